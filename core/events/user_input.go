package events

const (
	// KindTranscriptInterim identifies an interim transcript hypothesis.
	KindTranscriptInterim Kind = "user_input.transcript_interim"
	// KindTranscriptFinal identifies the terminal transcript of an utterance.
	KindTranscriptFinal Kind = "user_input.transcript_final"
)

// TranscriptInterim carries an interim transcript hypothesis for the
// utterance currently being spoken. The text may be revised by later
// interim events.
type TranscriptInterim struct {
	Base
	Transcript string
}

// NewTranscriptInterim creates an interim transcript event.
func NewTranscriptInterim(transcript string) TranscriptInterim {
	return TranscriptInterim{Base: NewBase(KindTranscriptInterim), Transcript: transcript}
}

func (t TranscriptInterim) String() string { return t.Transcript + "..." }

// TranscriptFinal carries the terminal transcript of a completed utterance.
// It starts a turn.
type TranscriptFinal struct {
	Base
	Transcript string
}

// NewTranscriptFinal creates a final transcript event.
func NewTranscriptFinal(transcript string) TranscriptFinal {
	return TranscriptFinal{Base: NewBase(KindTranscriptFinal), Transcript: transcript}
}

func (t TranscriptFinal) String() string { return t.Transcript }
