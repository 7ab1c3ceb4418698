package speechtotext

import "github.com/counterline/voice-core/core/audio"

type TranscriptionOptions struct {
	EncodingInfo   audio.EncodingInfo
	InterimResults bool
}

type TranscriptionOption func(*TranscriptionOptions)

func WithEncodingInfo(encodingInfo audio.EncodingInfo) TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.EncodingInfo = encodingInfo
	}
}

func WithInterimResults() TranscriptionOption {
	return func(o *TranscriptionOptions) {
		o.InterimResults = true
	}
}
