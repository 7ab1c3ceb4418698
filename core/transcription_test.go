package pipeline

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/counterline/voice-core/core/events"
	"github.com/counterline/voice-core/core/queue"
)

func TestTranscriptionStageForwardsAudioAndEmitsTranscripts(t *testing.T) {
	recognizer := newFakeRecognizer()
	stage := NewTranscriptionStage(recognizer)
	input := queue.New[[]byte]()

	runDone := make(chan error, 1)
	go func() {
		runDone <- stage.Run(context.Background(), input)
	}()

	input.Push([]byte{0x01, 0x02})
	input.Push([]byte{0x03})
	recognizer.emit("hel", false)
	recognizer.emit("hello", true)
	input.Cancel()

	collected := collectEvents(t, stage.Events())

	select {
	case err := <-runDone:
		if err != nil {
			t.Fatalf("unexpected run error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stage did not finish")
	}

	if len(collected) != 2 {
		t.Fatalf("expected 2 events, got %d: %v", len(collected), eventKinds(collected))
	}
	interim, ok := collected[0].(events.TranscriptInterim)
	if !ok || interim.Transcript != "hel" {
		t.Fatalf("unexpected first event: %#v", collected[0])
	}
	final, ok := collected[1].(events.TranscriptFinal)
	if !ok || final.Transcript != "hello" {
		t.Fatalf("unexpected second event: %#v", collected[1])
	}

	sent := recognizer.sentChunks()
	if len(sent) != 2 || !bytes.Equal(sent[0], []byte{0x01, 0x02}) || !bytes.Equal(sent[1], []byte{0x03}) {
		t.Fatalf("unexpected forwarded audio: %v", sent)
	}
}

func TestTranscriptionStageClosesRecognizerExactlyOnce(t *testing.T) {
	recognizer := newFakeRecognizer()
	stage := NewTranscriptionStage(recognizer)
	input := queue.New[[]byte]()

	runDone := make(chan error, 1)
	go func() {
		runDone <- stage.Run(context.Background(), input)
	}()

	input.Cancel()

	collectEvents(t, stage.Events())
	select {
	case <-runDone:
	case <-time.After(5 * time.Second):
		t.Fatal("stage did not finish")
	}

	if got := recognizer.closeCount(); got != 1 {
		t.Fatalf("expected exactly one recognizer close, got %d", got)
	}
}

func TestTranscriptionStageDrainsResultsEmittedBeforeClose(t *testing.T) {
	recognizer := newFakeRecognizer()
	stage := NewTranscriptionStage(recognizer)
	input := queue.New[[]byte]()

	recognizer.emit("queued before run", true)

	runDone := make(chan error, 1)
	go func() {
		runDone <- stage.Run(context.Background(), input)
	}()
	input.Cancel()

	collected := collectEvents(t, stage.Events())
	<-runDone

	if countKind(collected, events.KindTranscriptFinal) != 1 {
		t.Fatalf("expected the queued result to be drained, got %v", eventKinds(collected))
	}
}
