package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/counterline/voice-core/core/events"
	"github.com/counterline/voice-core/core/queue"
)

func runSynthesisStage(t *testing.T, synthesizer *fakeSynthesizer, feed []events.Event) []events.Event {
	t.Helper()

	stage := NewSynthesisStage(synthesizer)
	input := queue.New[events.Event]()
	for _, event := range feed {
		input.Push(event)
	}
	input.Cancel()

	runDone := make(chan error, 1)
	go func() {
		runDone <- stage.Run(context.Background(), input.Items)
	}()

	collected := collectEvents(t, stage.Events())
	select {
	case err := <-runDone:
		if err != nil {
			t.Fatalf("unexpected run error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stage did not finish")
	}
	return collected
}

func TestSynthesisStageSubmitsTurnConcatenation(t *testing.T) {
	synthesizer := newFakeSynthesizer()
	feed := []events.Event{
		events.NewTranscriptFinal("hello"),
		events.NewResponseSegment("Hi! "),
		events.NewResponseSegment("Welcome to "),
		events.NewResponseSegment("the sandwich shop."),
		events.NewTurnCompleted(),
	}

	collected := runSynthesisStage(t, synthesizer, feed)

	texts := synthesizer.sentTexts()
	if len(texts) != 1 || texts[0] != "Hi! Welcome to the sandwich shop." {
		t.Fatalf("synthesizer must receive the exact segment concatenation, got %q", texts)
	}

	// Passthrough plus the echoed audio frame. Frames may interleave with
	// passthrough events, but never reorder them.
	if got := countKind(collected, events.KindSpeechFrame); got != 1 {
		t.Fatalf("expected one speech frame, got %d in %v", got, eventKinds(collected))
	}
	var passthrough []events.Event
	for _, event := range collected {
		if event.Kind() != events.KindSpeechFrame {
			passthrough = append(passthrough, event)
		}
	}
	if len(passthrough) != len(feed) {
		t.Fatalf("unexpected passthrough events: %v", eventKinds(passthrough))
	}
	for i, event := range feed {
		if passthrough[i].Kind() != event.Kind() {
			t.Fatalf("input events must pass through in order: %v", eventKinds(passthrough))
		}
	}
}

func TestSynthesisStageSubmitsEmptyTurns(t *testing.T) {
	synthesizer := newFakeSynthesizer()
	feed := []events.Event{
		events.NewTranscriptFinal("..."),
		events.NewTurnCompleted(),
	}

	runSynthesisStage(t, synthesizer, feed)

	texts := synthesizer.sentTexts()
	if len(texts) != 1 || texts[0] != "" {
		t.Fatalf("an empty turn still marks the boundary for the vendor, got %q", texts)
	}
}

func TestSynthesisStageResetsBufferBetweenTurns(t *testing.T) {
	synthesizer := newFakeSynthesizer()
	feed := []events.Event{
		events.NewResponseSegment("first turn"),
		events.NewTurnCompleted(),
		events.NewResponseSegment("second turn"),
		events.NewTurnCompleted(),
	}

	runSynthesisStage(t, synthesizer, feed)

	texts := synthesizer.sentTexts()
	if len(texts) != 2 || texts[0] != "first turn" || texts[1] != "second turn" {
		t.Fatalf("each turn must be synthesized separately, got %q", texts)
	}
}

func TestSynthesisStageDiscardsUnterminatedTurnAndCloses(t *testing.T) {
	synthesizer := newFakeSynthesizer()
	feed := []events.Event{
		events.NewResponseSegment("never terminated"),
	}

	runSynthesisStage(t, synthesizer, feed)

	if texts := synthesizer.sentTexts(); len(texts) != 0 {
		t.Fatalf("an unterminated turn must not be synthesized, got %q", texts)
	}
	if got := synthesizer.closeCount(); got != 1 {
		t.Fatalf("expected exactly one synthesizer close, got %d", got)
	}
}
