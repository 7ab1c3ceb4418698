// Package speechtotext defines the contract the pipeline requires from a
// speech recognition vendor.
package speechtotext

// Result is a single recognizer output. Interim results are mutable
// hypotheses for the utterance in progress; a final result is the terminal
// transcript of a completed utterance.
type Result struct {
	Transcript string
	Final      bool
}

// Recognizer is a streaming speech recognition connection.
//
// SendAudio accepts a raw audio chunk and does not block on recognition.
// Close signals end of input and is idempotent; the recognizer finishes its
// own result sequence after Close. Results is the recognizer's asynchronous
// result sequence: a single-consumer iterator that ends once the vendor
// signals completion. A non-nil error item reports a vendor failure; the
// sequence ends after it.
type Recognizer interface {
	SendAudio(audio []byte) error
	Close() error
	Results() func(func(Result, error) bool)
}
