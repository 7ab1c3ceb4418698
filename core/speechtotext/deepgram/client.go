// Package deepgram implements the speechtotext.Recognizer contract on top
// of Deepgram's live listen websocket.
package deepgram

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/counterline/voice-core/core/audio"
	"github.com/counterline/voice-core/core/queue"
	"github.com/counterline/voice-core/core/speechtotext"
)

type resultItem struct {
	result speechtotext.Result
	err    error
}

// TranscriptionClient is a live transcription connection. One client serves
// one session; it is not reusable after Close.
type TranscriptionClient struct {
	conn   *websocket.Conn
	connMu sync.Mutex

	results   *queue.Queue[resultItem]
	closeOnce sync.Once
	closeErr  error

	lastMsgTs             time.Time
	accumulatedTranscript string

	options clientOptions
}

type clientOptions struct {
	speechtotext.TranscriptionOptions
	apiKey string
	model  string
}

type ClientOption func(*clientOptions)

// WithAPIKey overrides the DEEPGRAM_API_KEY environment variable.
func WithAPIKey(apiKey string) ClientOption {
	return func(o *clientOptions) { o.apiKey = apiKey }
}

func WithModel(model string) ClientOption {
	return func(o *clientOptions) { o.model = model }
}

// WithTranscriptionOptions applies vendor-neutral transcription options.
func WithTranscriptionOptions(opts ...speechtotext.TranscriptionOption) ClientOption {
	return func(o *clientOptions) {
		for _, opt := range opts {
			opt(&o.TranscriptionOptions)
		}
	}
}

// NewTranscriptionClient opens a live transcription websocket and starts
// reading results. The returned client's Results sequence ends after Close
// once Deepgram flushes its remaining transcripts.
func NewTranscriptionClient(ctx context.Context, opts ...ClientOption) (*TranscriptionClient, error) {
	c := &TranscriptionClient{
		results:   queue.New[resultItem](),
		lastMsgTs: time.Now(),
		options: clientOptions{
			model: defaultModel,
			TranscriptionOptions: speechtotext.TranscriptionOptions{
				EncodingInfo: audio.GetDefaultEncodingInfo(),
			},
		},
	}
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

	conn, err := connectWebsocket(c.options)
	if err != nil {
		return nil, fmt.Errorf("failed to open websocket: %w", err)
	}
	c.conn = conn

	keepAliveCtx, keepAliveCancel := context.WithCancel(ctx)
	go func() {
		defer keepAliveCancel()
		c.readAndProcessMessages(conn)
	}()
	go c.keepAlive(keepAliveCtx)

	return c, nil
}

// Results returns the recognizer's asynchronous result sequence.
func (c *TranscriptionClient) Results() func(func(speechtotext.Result, error) bool) {
	return func(yield func(speechtotext.Result, error) bool) {
		for item := range c.results.Items {
			if !yield(item.result, item.err) {
				return
			}
		}
	}
}

// Close signals end of audio input. Deepgram flushes pending transcripts
// and closes the connection, which ends the Results sequence. Repeated
// calls are ignored.
func (c *TranscriptionClient) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.sendCloseStream()
	})
	return c.closeErr
}
