package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/counterline/voice-core/core/agents"
	"github.com/counterline/voice-core/core/events"
	"github.com/counterline/voice-core/core/llms"
	"github.com/counterline/voice-core/core/queue"
)

func runAgentStage(t *testing.T, agent agents.Agent, feed []events.Event) []events.Event {
	t.Helper()

	stage := NewAgentStage(agent, "thread-test")
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

func TestAgentStagePassesThroughNonFinalEvents(t *testing.T) {
	agent := &scriptedAgent{}
	feed := []events.Event{
		events.NewTranscriptInterim("he"),
		events.NewTranscriptInterim("hello th"),
	}

	collected := runAgentStage(t, agent, feed)

	if len(collected) != 2 {
		t.Fatalf("expected passthrough only, got %v", eventKinds(collected))
	}
	if len(agent.askedMessages()) != 0 {
		t.Fatal("interim transcripts must not start a turn")
	}
}

func TestAgentStageGreetingFastPath(t *testing.T) {
	agent := &scriptedAgent{items: []agents.StreamItem{
		agents.AssistantFragment{Text: "should not be reached"},
	}}

	collected := runAgentStage(t, agent, []events.Event{events.NewTranscriptFinal("hello")})

	if len(agent.askedMessages()) != 0 {
		t.Fatal("greeting must not reach the agent")
	}

	kinds := eventKinds(collected)
	want := []events.Kind{events.KindTranscriptFinal, events.KindResponseSegment, events.KindTurnCompleted}
	if len(kinds) != len(want) {
		t.Fatalf("unexpected event sequence: %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("unexpected event sequence: %v", kinds)
		}
	}

	segment := collected[1].(events.ResponseSegment)
	if !strings.HasPrefix(segment.Segment, "Hi! Welcome") {
		t.Fatalf("unexpected greeting response: %q", segment.Segment)
	}
}

func TestGreetingPattern(t *testing.T) {
	greetings := []string{"hello", "Hi", "HEY.", "good morning", "Good Evening.", "  hey  "}
	for _, transcript := range greetings {
		if !greetingPattern.MatchString(strings.TrimSpace(transcript)) {
			t.Errorf("expected %q to match the greeting pattern", transcript)
		}
	}

	nonGreetings := []string{"hello there", "hi, can I order", "good", "say hi", "what sandwiches do you have"}
	for _, transcript := range nonGreetings {
		if greetingPattern.MatchString(strings.TrimSpace(transcript)) {
			t.Errorf("expected %q not to match the greeting pattern", transcript)
		}
	}
}

func TestAgentStageEmitsTurnEvents(t *testing.T) {
	agent := &scriptedAgent{items: []agents.StreamItem{
		agents.AssistantFragment{ToolCalls: []llms.ToolCall{
			{ID: "call-1", Name: "get_menu_info", Arguments: `{"category":"sandwiches"}`},
		}},
		agents.ToolResultMessage{ID: "call-1", Name: "get_menu_info", Response: "Our sandwiches: ..."},
		agents.AssistantFragment{Text: "We have "},
		agents.AssistantFragment{Text: "five sandwiches."},
	}}

	collected := runAgentStage(t, agent, []events.Event{events.NewTranscriptFinal("what sandwiches do you have")})

	kinds := eventKinds(collected)
	want := []events.Kind{
		events.KindTranscriptFinal,
		events.KindToolCallStarted,
		events.KindToolCallCompleted,
		events.KindResponseSegment,
		events.KindResponseSegment,
		events.KindTurnCompleted,
	}
	if len(kinds) != len(want) {
		t.Fatalf("unexpected event sequence: %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("unexpected event sequence: %v", kinds)
		}
	}

	started := collected[1].(events.ToolCallStarted)
	completed := collected[2].(events.ToolCallCompleted)
	if started.ID != "call-1" || completed.ID != started.ID {
		t.Fatalf("tool result must pair with its call: %#v vs %#v", started, completed)
	}
}

func TestAgentStageGeneratesMissingToolCallIDs(t *testing.T) {
	agent := &scriptedAgent{items: []agents.StreamItem{
		agents.AssistantFragment{ToolCalls: []llms.ToolCall{{Name: "view_order"}}},
	}}

	collected := runAgentStage(t, agent, []events.Event{events.NewTranscriptFinal("what's in my order")})

	for _, event := range collected {
		if started, ok := event.(events.ToolCallStarted); ok {
			if started.ID == "" {
				t.Fatal("expected a generated tool call ID")
			}
			return
		}
	}
	t.Fatalf("no tool call event found: %v", eventKinds(collected))
}

func TestAgentStageCompletesTurnOnAgentError(t *testing.T) {
	agent := &scriptedAgent{
		items: []agents.StreamItem{agents.AssistantFragment{Text: "partial"}},
		err:   errors.New("model unavailable"),
	}

	collected := runAgentStage(t, agent, []events.Event{
		events.NewTranscriptFinal("a blt please"),
		events.NewTranscriptFinal("hello"),
	})

	if got := countKind(collected, events.KindTurnCompleted); got != 2 {
		t.Fatalf("expected exactly one turn end per turn, got %d in %v", got, eventKinds(collected))
	}

	// The failed turn must not take the session down; the greeting after
	// it still gets its response.
	if got := countKind(collected, events.KindResponseSegment); got != 2 {
		t.Fatalf("expected the session to stay usable after the error, got %v", eventKinds(collected))
	}
}

type blockingAgent struct {
	started chan struct{}
	release chan struct{}
}

func (a *blockingAgent) Respond(context.Context, string, string) func(func(agents.StreamItem, error) bool) {
	return func(yield func(agents.StreamItem, error) bool) {
		close(a.started)
		<-a.release
		yield(agents.AssistantFragment{Text: "done"}, nil)
	}
}

func TestAgentStageStateMachine(t *testing.T) {
	agent := &blockingAgent{started: make(chan struct{}), release: make(chan struct{})}
	stage := NewAgentStage(agent, "thread-test")
	input := queue.New[events.Event]()

	if stage.State() != AgentStateIdle {
		t.Fatalf("expected idle before any turn, got %q", stage.State())
	}

	runDone := make(chan error, 1)
	go func() {
		runDone <- stage.Run(context.Background(), input.Items)
	}()

	input.Push(events.NewTranscriptFinal("a blt please"))

	select {
	case <-agent.started:
	case <-time.After(5 * time.Second):
		t.Fatal("turn never started")
	}
	if stage.State() != AgentStateProcessing {
		t.Fatalf("expected processing during a turn, got %q", stage.State())
	}

	close(agent.release)
	input.Cancel()

	collectEvents(t, stage.Events())
	<-runDone

	if stage.State() != AgentStateIdle {
		t.Fatalf("expected idle after the turn, got %q", stage.State())
	}
}
