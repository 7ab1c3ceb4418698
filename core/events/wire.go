package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// envelope is the self-describing wire form of an event: a type
// discriminant, a millisecond epoch timestamp, and the variant's fields.
// Audio payloads ride as base64 through encoding/json's []byte handling and
// round-trip byte-exact.
type envelope struct {
	Type Kind  `json:"type"`
	TS   int64 `json:"ts"`

	Transcript string `json:"transcript,omitempty"`
	Segment    string `json:"segment,omitempty"`
	ID         string `json:"id,omitempty"`
	Name       string `json:"name,omitempty"`
	Arguments  string `json:"arguments,omitempty"`
	Response   string `json:"response,omitempty"`
	Audio      []byte `json:"audio,omitempty"`
}

// Marshal serializes an event to its wire form.
func Marshal(event Event) ([]byte, error) {
	env := envelope{
		Type: event.Kind(),
		TS:   event.Timestamp().UnixMilli(),
	}

	switch typed := event.(type) {
	case TranscriptInterim:
		env.Transcript = typed.Transcript
	case TranscriptFinal:
		env.Transcript = typed.Transcript
	case ResponseSegment:
		env.Segment = typed.Segment
	case ToolCallStarted:
		env.ID, env.Name, env.Arguments = typed.ID, typed.Name, typed.Arguments
	case ToolCallCompleted:
		env.ID, env.Name, env.Response = typed.ID, typed.Name, typed.Response
	case TurnCompleted:
	case SpeechFrame:
		env.Audio = typed.Audio
	default:
		return nil, fmt.Errorf("unknown event kind: %q", event.Kind())
	}

	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %q event: %w", event.Kind(), err)
	}
	return data, nil
}

// Unmarshal rebuilds an event from its wire form.
func Unmarshal(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	base := NewBaseAt(env.Type, time.UnixMilli(env.TS))
	switch env.Type {
	case KindTranscriptInterim:
		return TranscriptInterim{Base: base, Transcript: env.Transcript}, nil
	case KindTranscriptFinal:
		return TranscriptFinal{Base: base, Transcript: env.Transcript}, nil
	case KindResponseSegment:
		return ResponseSegment{Base: base, Segment: env.Segment}, nil
	case KindToolCallStarted:
		return ToolCallStarted{Base: base, ID: env.ID, Name: env.Name, Arguments: env.Arguments}, nil
	case KindToolCallCompleted:
		return ToolCallCompleted{Base: base, ID: env.ID, Name: env.Name, Response: env.Response}, nil
	case KindTurnCompleted:
		return TurnCompleted{Base: base}, nil
	case KindSpeechFrame:
		return SpeechFrame{Base: base, Audio: env.Audio}, nil
	}

	return nil, fmt.Errorf("unknown event kind: %q", env.Type)
}
