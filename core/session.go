package pipeline

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/counterline/voice-core/core/agents"
	"github.com/counterline/voice-core/core/events"
	"github.com/counterline/voice-core/core/queue"
	"github.com/counterline/voice-core/core/speechtotext"
	"github.com/counterline/voice-core/core/texttospeech"
)

// Session is one caller's pipeline: audio in, transcription, one
// conversational turn per utterance, speech synthesis, events out. Its ID
// doubles as the conversation thread ID for the agent's memory and order
// state.
type Session struct {
	ID string

	input         *queue.Queue[[]byte]
	transcription *TranscriptionStage
	agent         *AgentStage
	synthesis     *SynthesisStage
}

func NewSession(
	recognizer speechtotext.Recognizer,
	agent agents.Agent,
	synthesizer texttospeech.Synthesizer,
) *Session {
	id := uuid.NewString()
	return &Session{
		ID:            id,
		input:         queue.New[[]byte](),
		transcription: NewTranscriptionStage(recognizer),
		agent:         NewAgentStage(agent, id),
		synthesis:     NewSynthesisStage(synthesizer),
	}
}

// PushAudio feeds one raw audio chunk into the session. It never blocks.
func (s *Session) PushAudio(chunk []byte) {
	s.input.Push(chunk)
}

// Close ends the session's input. The pipeline drains forward: every
// event already in flight is still delivered before Events ends. Repeated
// calls are ignored.
func (s *Session) Close() {
	s.input.Cancel()
}

// Events is the session's output sequence: everything the synthesis stage
// emits, which includes every upstream event passed through. It ends once
// the whole pipeline has drained.
func (s *Session) Events() func(yield func(events.Event) bool) {
	return s.synthesis.Events()
}

// State reports whether a conversational turn is currently running.
func (s *Session) State() AgentState {
	return s.agent.State()
}

// Run drives the three stages until the input has ended and every stage
// has drained. The first stage failure is returned, but later stages keep
// draining regardless so the output sequence always terminates.
func (s *Session) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return s.transcription.Run(ctx, s.input)
	})
	group.Go(func() error {
		return s.agent.Run(ctx, s.transcription.Events())
	})
	group.Go(func() error {
		return s.synthesis.Run(ctx, s.agent.Events())
	})

	return group.Wait()
}
