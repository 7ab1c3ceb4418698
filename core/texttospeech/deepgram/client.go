// Package deepgram implements the texttospeech.Synthesizer contract on top
// of Deepgram's speak websocket.
package deepgram

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/counterline/voice-core/core/audio"
	"github.com/counterline/voice-core/core/queue"
	"github.com/counterline/voice-core/core/texttospeech"
)

type deepgramVoice string

const (
	VoiceThalia  deepgramVoice = "aura-2-thalia-en"
	VoiceAsteria deepgramVoice = "aura-asteria-en"
	VoiceOrion   deepgramVoice = "aura-orion-en"

	defaultVoice = VoiceThalia
)

func GetAvailableVoices() []deepgramVoice {
	return []deepgramVoice{VoiceThalia, VoiceAsteria, VoiceOrion}
}

type audioItem struct {
	chunk []byte
	err   error
}

// TextToSpeechClient is a streaming synthesis connection. One client serves
// one session; it is not reusable after Close.
type TextToSpeechClient struct {
	conn   *websocket.Conn
	connMu sync.Mutex

	audio     *queue.Queue[audioItem]
	closeOnce sync.Once
	closeErr  error

	voice   deepgramVoice
	options clientOptions
}

type clientOptions struct {
	texttospeech.TextToSpeechOptions
	apiKey string
}

type ClientOption func(*clientOptions)

// WithAPIKey overrides the DEEPGRAM_API_KEY environment variable.
func WithAPIKey(apiKey string) ClientOption {
	return func(o *clientOptions) { o.apiKey = apiKey }
}

// WithTextToSpeechOptions applies vendor-neutral synthesis options.
func WithTextToSpeechOptions(opts ...texttospeech.TextToSpeechOption) ClientOption {
	return func(o *clientOptions) {
		for _, opt := range opts {
			opt(&o.TextToSpeechOptions)
		}
	}
}

// NewTextToSpeechClient opens a speak websocket and starts reading audio.
func NewTextToSpeechClient(ctx context.Context, voice deepgramVoice, opts ...ClientOption) (*TextToSpeechClient, error) {
	c := &TextToSpeechClient{
		audio: queue.New[audioItem](),
		voice: defaultVoice,
		options: clientOptions{
			TextToSpeechOptions: texttospeech.TextToSpeechOptions{
				EncodingInfo: audio.GetDefaultEncodingInfo(),
			},
		},
	}

	if !slices.Contains(GetAvailableVoices(), voice) {
		return nil, fmt.Errorf("invalid voice")
	}
	c.voice = voice

	for _, opt := range opts {
		opt(&c.options)
	}

	if c.options.apiKey == "" {
		apiKey, ok := os.LookupEnv("DEEPGRAM_API_KEY")
		if !ok {
			return nil, fmt.Errorf("deepgram api key not found")
		}
		c.options.apiKey = apiKey
	}

	conn, err := connectWebsocket(c.voice, c.options)
	if err != nil {
		return nil, fmt.Errorf("failed to open websocket: %w", err)
	}
	c.conn = conn

	go c.readAndProcessMessages(conn)

	return c, nil
}

// Audio returns the synthesizer's asynchronous audio chunk sequence.
func (c *TextToSpeechClient) Audio() func(func([]byte, error) bool) {
	return func(yield func([]byte, error) bool) {
		for item := range c.audio.Items {
			if !yield(item.chunk, item.err) {
				return
			}
		}
	}
}

// Close signals that no more text will arrive. Deepgram finishes synthesis
// of anything buffered and closes the connection, which ends the Audio
// sequence. Repeated calls are ignored.
func (c *TextToSpeechClient) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.sendWebsocketMessage(closeMsg)
	})
	return c.closeErr
}
