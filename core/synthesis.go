package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/counterline/voice-core/core/events"
	"github.com/counterline/voice-core/core/queue"
	"github.com/counterline/voice-core/core/texttospeech"
)

// SynthesisStage accumulates each turn's response text and hands the
// completed turn to the speech synthesizer, republishing synthesized audio
// as speech frame events. Every input event passes through unchanged.
type SynthesisStage struct {
	synthesizer texttospeech.Synthesizer
	queue       *queue.Queue[events.Event]
}

func NewSynthesisStage(synthesizer texttospeech.Synthesizer) *SynthesisStage {
	return &SynthesisStage{
		synthesizer: synthesizer,
		queue:       queue.New[events.Event](),
	}
}

// Events is the stage's output sequence. It ends once Run has finished.
func (s *SynthesisStage) Events() func(yield func(events.Event) bool) {
	return s.queue.Items
}

// Run pumps the stage until the input ends and the synthesizer's audio
// sequence is drained. The synthesizer receives exactly the concatenation
// of the turn's response segments, in order, once per completed turn; an
// empty turn is still submitted so the vendor sees the turn boundary.
func (s *SynthesisStage) Run(ctx context.Context, input func(yield func(events.Event) bool)) error {
	defer s.queue.Cancel()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var pending strings.Builder
		defer func() {
			if pending.Len() > 0 {
				// Unterminated turn at teardown; its text is dropped, not
				// spoken.
				logger.WarnContext(ctx, "Discarding unsynthesized response text",
					slog.Int("bytes", pending.Len()))
			}
			if err := s.synthesizer.Close(); err != nil {
				logger.WarnContext(ctx, "Failed to close synthesizer", slog.Any("error", err))
			}
		}()

		for event := range input {
			s.queue.Push(event)

			switch event := event.(type) {
			case events.ResponseSegment:
				pending.WriteString(event.Segment)
			case events.TurnCompleted:
				text := pending.String()
				pending.Reset()
				if err := s.synthesizer.SendText(text); err != nil {
					return fmt.Errorf("failed to send text to synthesizer: %w", err)
				}
			}
		}
		return nil
	})

	group.Go(func() error {
		for chunk, err := range s.synthesizer.Audio() {
			if err != nil {
				return fmt.Errorf("synthesizer failed: %w", err)
			}
			s.queue.Push(events.NewSpeechFrame(chunk))
		}
		return nil
	})

	return group.Wait()
}
