package events

// KindSpeechFrame identifies a synthesized speech audio chunk.
const KindSpeechFrame Kind = "assistant_speech.frame"

// SpeechFrame carries a chunk of synthesized speech audio.
type SpeechFrame struct {
	Base
	Audio []byte
}

// NewSpeechFrame creates a speech frame event. The audio slice is not
// copied; the producer must not reuse it after emitting.
func NewSpeechFrame(audio []byte) SpeechFrame {
	return SpeechFrame{Base: NewBase(KindSpeechFrame), Audio: audio}
}
