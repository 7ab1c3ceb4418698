package events

// KindTurnCompleted identifies turn termination.
const KindTurnCompleted Kind = "turn_state.completed"

// TurnCompleted terminates the turn started by the most recent
// TranscriptFinal. Exactly one is emitted per turn, regardless of whether
// the turn ended normally, through the greeting fast path, or because an
// error was caught.
type TurnCompleted struct {
	Base
}

// NewTurnCompleted creates a turn completed event.
func NewTurnCompleted() TurnCompleted {
	return TurnCompleted{Base: NewBase(KindTurnCompleted)}
}
