package events

import (
	"bytes"
	"testing"
)

func TestConstructorsEmitExpectedKinds(t *testing.T) {
	testCases := []struct {
		name     string
		event    Event
		expected Kind
	}{
		{name: "transcript interim", event: NewTranscriptInterim("text"), expected: KindTranscriptInterim},
		{name: "transcript final", event: NewTranscriptFinal("text"), expected: KindTranscriptFinal},
		{name: "response segment", event: NewResponseSegment("seg"), expected: KindResponseSegment},
		{name: "tool call started", event: NewToolCallStarted("id", "tool", "{}"), expected: KindToolCallStarted},
		{name: "tool call completed", event: NewToolCallCompleted("id", "tool", "ok"), expected: KindToolCallCompleted},
		{name: "turn completed", event: NewTurnCompleted(), expected: KindTurnCompleted},
		{name: "speech frame", event: NewSpeechFrame([]byte{1}), expected: KindSpeechFrame},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.event.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestWireRoundTripPreservesKinds(t *testing.T) {
	testCases := []Event{
		NewTranscriptInterim("inter"),
		NewTranscriptFinal("final"),
		NewResponseSegment("seg"),
		NewToolCallStarted("call-1", "get_menu_info", `{"category":"sandwiches"}`),
		NewToolCallCompleted("call-1", "get_menu_info", "Our sandwiches: ..."),
		NewTurnCompleted(),
	}

	for _, event := range testCases {
		t.Run(string(event.Kind()), func(t *testing.T) {
			data, err := Marshal(event)
			if err != nil {
				t.Fatalf("failed to marshal: %v", err)
			}
			rebuilt, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("failed to unmarshal: %v", err)
			}
			if rebuilt.Kind() != event.Kind() {
				t.Fatalf("expected kind %q, got %q", event.Kind(), rebuilt.Kind())
			}
			if rebuilt.Timestamp().UnixMilli() != event.Timestamp().UnixMilli() {
				t.Fatalf("expected timestamp %d, got %d", event.Timestamp().UnixMilli(), rebuilt.Timestamp().UnixMilli())
			}
		})
	}
}

func TestSpeechFrameAudioRoundTripsByteExact(t *testing.T) {
	audio := []byte{0x00, 0x01, 0x7f, 0x80, 0xff, 0xfe}

	data, err := Marshal(NewSpeechFrame(audio))
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	rebuilt, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	frame, ok := rebuilt.(SpeechFrame)
	if !ok {
		t.Fatalf("expected SpeechFrame, got %T", rebuilt)
	}
	if !bytes.Equal(frame.Audio, audio) {
		t.Fatalf("expected audio %v, got %v", audio, frame.Audio)
	}
}

func TestUnmarshalRejectsUnknownKind(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"type":"bogus.kind","ts":0}`)); err == nil {
		t.Fatal("expected error for unknown event kind")
	}
}
