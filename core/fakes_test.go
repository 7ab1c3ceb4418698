package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/counterline/voice-core/core/agents"
	"github.com/counterline/voice-core/core/events"
	"github.com/counterline/voice-core/core/queue"
	"github.com/counterline/voice-core/core/speechtotext"
)

// fakeRecognizer records forwarded audio and lets the test emit
// recognition results on demand. Close ends the result sequence, like the
// real vendor finishing after a CloseStream message.
type fakeRecognizer struct {
	mu      sync.Mutex
	sent    [][]byte
	closes  int
	err     error
	results *queue.Queue[speechtotext.Result]
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{results: queue.New[speechtotext.Result]()}
}

func (f *fakeRecognizer) SendAudio(audio []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, audio)
	return nil
}

func (f *fakeRecognizer) Close() error {
	f.mu.Lock()
	f.closes++
	f.mu.Unlock()
	f.results.Cancel()
	return nil
}

func (f *fakeRecognizer) Results() func(func(speechtotext.Result, error) bool) {
	return func(yield func(speechtotext.Result, error) bool) {
		f.results.Items(func(result speechtotext.Result) bool {
			return yield(result, nil)
		})
	}
}

func (f *fakeRecognizer) emit(transcript string, final bool) {
	f.results.Push(speechtotext.Result{Transcript: transcript, Final: final})
}

func (f *fakeRecognizer) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}

func (f *fakeRecognizer) sentChunks() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte{}, f.sent...)
}

// fakeSynthesizer records submitted text and echoes every non-empty
// submission back as one audio chunk containing the text's bytes.
type fakeSynthesizer struct {
	mu     sync.Mutex
	texts  []string
	closes int
	audio  *queue.Queue[[]byte]
}

func newFakeSynthesizer() *fakeSynthesizer {
	return &fakeSynthesizer{audio: queue.New[[]byte]()}
}

func (f *fakeSynthesizer) SendText(text string) error {
	f.mu.Lock()
	f.texts = append(f.texts, text)
	f.mu.Unlock()
	if text != "" {
		f.audio.Push([]byte(text))
	}
	return nil
}

func (f *fakeSynthesizer) Close() error {
	f.mu.Lock()
	f.closes++
	f.mu.Unlock()
	f.audio.Cancel()
	return nil
}

func (f *fakeSynthesizer) Audio() func(func([]byte, error) bool) {
	return func(yield func([]byte, error) bool) {
		f.audio.Items(func(chunk []byte) bool {
			return yield(chunk, nil)
		})
	}
}

func (f *fakeSynthesizer) sentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.texts...)
}

func (f *fakeSynthesizer) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}

// scriptedAgent replays a fixed item sequence for every utterance and
// records what it was asked.
type scriptedAgent struct {
	mu       sync.Mutex
	messages []string
	items    []agents.StreamItem
	err      error
}

func (a *scriptedAgent) Respond(_ context.Context, message string, _ string) func(func(agents.StreamItem, error) bool) {
	a.mu.Lock()
	a.messages = append(a.messages, message)
	a.mu.Unlock()

	return func(yield func(agents.StreamItem, error) bool) {
		for _, item := range a.items {
			if !yield(item, nil) {
				return
			}
		}
		if a.err != nil {
			yield(nil, a.err)
		}
	}
}

func (a *scriptedAgent) askedMessages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string{}, a.messages...)
}

// collectEvents drains an event sequence into a slice, failing the test if
// the sequence does not terminate in time.
func collectEvents(t *testing.T, sequence func(func(events.Event) bool)) []events.Event {
	t.Helper()

	var collected []events.Event
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range sequence {
			collected = append(collected, event)
		}
	}()

	select {
	case <-done:
		return collected
	case <-time.After(5 * time.Second):
		t.Fatal("event sequence did not terminate")
		return nil
	}
}

func eventKinds(collected []events.Event) []events.Kind {
	kinds := make([]events.Kind, 0, len(collected))
	for _, event := range collected {
		kinds = append(kinds, event.Kind())
	}
	return kinds
}

func countKind(collected []events.Event, kind events.Kind) int {
	count := 0
	for _, event := range collected {
		if event.Kind() == kind {
			count++
		}
	}
	return count
}
