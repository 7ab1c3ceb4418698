package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/counterline/voice-core/core/events"
	"github.com/counterline/voice-core/core/queue"
	"github.com/counterline/voice-core/core/speechtotext"
)

// TranscriptionStage bridges the session's raw audio input to the speech
// recognizer and republishes recognition results as transcript events.
type TranscriptionStage struct {
	recognizer speechtotext.Recognizer
	queue      *queue.Queue[events.Event]
}

func NewTranscriptionStage(recognizer speechtotext.Recognizer) *TranscriptionStage {
	return &TranscriptionStage{
		recognizer: recognizer,
		queue:      queue.New[events.Event](),
	}
}

// Events is the stage's output sequence. It ends once Run has finished.
func (s *TranscriptionStage) Events() func(yield func(events.Event) bool) {
	return s.queue.Items
}

// Run pumps the stage until the input ends and the recognizer's result
// sequence is drained. The recognizer is closed exactly once, when the
// input ends; its results keep flowing until the vendor finishes on its
// own.
func (s *TranscriptionStage) Run(ctx context.Context, input *queue.Queue[[]byte]) error {
	defer s.queue.Cancel()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer func() {
			if err := s.recognizer.Close(); err != nil {
				logger.WarnContext(ctx, "Failed to close recognizer", slog.Any("error", err))
			}
		}()

		for chunk := range input.Items {
			if err := s.recognizer.SendAudio(chunk); err != nil {
				return fmt.Errorf("failed to send audio to recognizer: %w", err)
			}
		}
		return nil
	})

	group.Go(func() error {
		for result, err := range s.recognizer.Results() {
			if err != nil {
				return fmt.Errorf("recognizer failed: %w", err)
			}
			if result.Final {
				s.queue.Push(events.NewTranscriptFinal(result.Transcript))
			} else {
				s.queue.Push(events.NewTranscriptInterim(result.Transcript))
			}
		}
		return nil
	})

	return group.Wait()
}
