// Package texttospeech defines the contract the pipeline requires from a
// speech synthesis vendor.
package texttospeech

// Synthesizer is a streaming speech synthesis connection.
//
// SendText submits one turn's worth of response text for synthesis; an
// empty string is a no-op synthesis request that still marks the turn
// boundary for the vendor. Close signals that no more text will arrive and
// is idempotent; the synthesizer finishes its own audio sequence after
// Close. Audio is the synthesizer's asynchronous audio chunk sequence: a
// single-consumer iterator that ends once the vendor signals completion.
// A non-nil error item reports a vendor failure; the sequence ends after it.
type Synthesizer interface {
	SendText(text string) error
	Close() error
	Audio() func(func([]byte, error) bool)
}
