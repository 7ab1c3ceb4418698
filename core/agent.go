package pipeline

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/counterline/voice-core/core/agents"
	"github.com/counterline/voice-core/core/events"
	"github.com/counterline/voice-core/core/queue"
)

// AgentState reports whether the agent stage is between turns or inside
// one.
type AgentState string

const (
	AgentStateIdle       AgentState = "idle"
	AgentStateProcessing AgentState = "processing"
)

// Plain greetings skip the agent entirely; they need no tools and a fixed
// reply keeps the first response instant.
var greetingPattern = regexp.MustCompile(`^(?i)(hello|hi|hey|good morning|good afternoon|good evening)\.?$`)

const greetingResponse = "Hi! Welcome to the sandwich shop. What can I get started for you?"

// AgentStage runs one conversational turn per final transcript. Every
// input event passes through unchanged; the stage appends the turn's
// response, tool and termination events behind the final transcript that
// started it. Turns run strictly one at a time.
type AgentStage struct {
	agent    agents.Agent
	threadID string
	queue    *queue.Queue[events.Event]

	mu    sync.Mutex
	state AgentState
}

func NewAgentStage(agent agents.Agent, threadID string) *AgentStage {
	return &AgentStage{
		agent:    agent,
		threadID: threadID,
		queue:    queue.New[events.Event](),
		state:    AgentStateIdle,
	}
}

// State reports the stage's current turn state.
func (s *AgentStage) State() AgentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *AgentStage) setState(state AgentState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Events is the stage's output sequence. It ends once Run has finished.
func (s *AgentStage) Events() func(yield func(events.Event) bool) {
	return s.queue.Items
}

// Run consumes the input sequence until it ends. A turn that fails is
// terminated like any other; the error is logged and the session stays
// usable.
func (s *AgentStage) Run(ctx context.Context, input func(yield func(events.Event) bool)) error {
	defer s.queue.Cancel()

	for event := range input {
		s.queue.Push(event)

		transcript, ok := event.(events.TranscriptFinal)
		if !ok {
			continue
		}

		s.setState(AgentStateProcessing)
		s.runTurn(ctx, transcript.Transcript)
		s.setState(AgentStateIdle)
	}
	return nil
}

// runTurn emits the events of one conversational turn. Exactly one
// TurnCompleted is pushed no matter how the turn ends.
func (s *AgentStage) runTurn(ctx context.Context, transcript string) {
	ctx, span := tracer.Start(ctx, "conversation turn")
	defer span.End()
	span.SetAttributes(attribute.String("turn.transcript", transcript))

	defer s.queue.Push(events.NewTurnCompleted())

	if greetingPattern.MatchString(strings.TrimSpace(transcript)) {
		span.SetAttributes(attribute.Bool("turn.greeting_fast_path", true))
		s.queue.Push(events.NewResponseSegment(greetingResponse))
		return
	}

	for item, err := range s.agent.Respond(ctx, transcript, s.threadID) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.ErrorContext(ctx, "Turn failed", slog.Any("error", err))
			return
		}

		switch item := item.(type) {
		case agents.AssistantFragment:
			if item.Text != "" {
				s.queue.Push(events.NewResponseSegment(item.Text))
			}
			for _, call := range item.ToolCalls {
				id := call.ID
				if id == "" {
					id = uuid.NewString()
				}
				s.queue.Push(events.NewToolCallStarted(id, call.Name, call.Arguments))
			}

		case agents.ToolResultMessage:
			s.queue.Push(events.NewToolCallCompleted(item.ID, item.Name, item.Response))
		}
	}
}
