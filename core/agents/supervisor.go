package agents

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/counterline/voice-core/core/llms"
	"github.com/counterline/voice-core/core/llms/groq"
)

type routeTarget string

const (
	routeOrder           routeTarget = "order"
	routeCustomerService routeTarget = "customer_service"
	routeFinish          routeTarget = "FINISH"
)

type routeDecision struct {
	NextAgent string `json:"next_agent" jsonschema:"enum=order,enum=customer_service,enum=FINISH" jsonschema_description:"The agent to route the customer's request to"`
}

type (
	routeFunc  func(ctx context.Context, message string, turns []llms.Turn) (routeTarget, error)
	promptFunc func(ctx context.Context, prompt string, systemPrompt string, opts ...llms.PromptOption) llms.Stream
)

// Supervisor routes each customer utterance to a specialized agent and
// streams that agent's response. It holds the order store and per-agent
// conversation memory for all sessions, so one Supervisor serves many
// concurrent sessions.
type Supervisor struct {
	route  routeFunc
	prompt promptFunc

	orders *orderStore
	memory *conversationMemory
}

type SupervisorOption func(*Supervisor)

// WithRouteFunc replaces the routing decision call.
func WithRouteFunc(route routeFunc) SupervisorOption {
	return func(s *Supervisor) {
		s.route = route
	}
}

// WithPromptFunc replaces the streaming LLM call used by the
// specialized agents.
func WithPromptFunc(prompt promptFunc) SupervisorOption {
	return func(s *Supervisor) {
		s.prompt = prompt
	}
}

// NewSupervisor creates a supervisor backed by the groq chat-completions
// API with the given credentials and model.
func NewSupervisor(apiKey string, model string, opts ...SupervisorOption) *Supervisor {
	supervisor := &Supervisor{
		route: func(ctx context.Context, message string, turns []llms.Turn) (routeTarget, error) {
			decision, err := groq.PromptJSONSchema[routeDecision](ctx, apiKey, model,
				message, supervisorSystemPrompt, llms.WithTurns(turns...))
			if err != nil {
				return "", fmt.Errorf("failed to prompt for routing decision: %w", err)
			}
			return routeTarget(decision.NextAgent), nil
		},
		prompt: func(ctx context.Context, prompt string, systemPrompt string, opts ...llms.PromptOption) llms.Stream {
			return groq.PromptWithStream(ctx, apiKey, model, prompt, systemPrompt, opts...)
		},
		orders: newOrderStore(),
		memory: newConversationMemory(),
	}
	for _, opt := range opts {
		opt(supervisor)
	}
	return supervisor
}

// Respond routes the message and streams the selected agent's response.
func (s *Supervisor) Respond(ctx context.Context, message string, threadID string) func(yield func(StreamItem, error) bool) {
	return func(yield func(StreamItem, error) bool) {
		ctx, span := tracer.Start(ctx, "respond")
		defer span.End()

		target := s.routeMessage(ctx, message, threadID)
		span.SetAttributes(attribute.String("routing.target", string(target)))

		if target == routeFinish {
			yield(AssistantFragment{Text: farewellResponse}, nil)
			return
		}

		var systemPrompt string
		var tools []llms.Tool
		switch target {
		case routeCustomerService:
			systemPrompt = customerServiceSystemPrompt
			tools = s.customerServiceTools()
		default:
			systemPrompt = orderSystemPrompt
			tools = s.orderTools(threadID)
		}

		s.runAgent(ctx, yield, string(target), threadID, message, systemPrompt, tools)
	}
}

// routeMessage asks the routing model which agent should handle the
// message. Unclear or failed routing falls back to the order agent, the
// shop's primary function.
func (s *Supervisor) routeMessage(ctx context.Context, message string, threadID string) routeTarget {
	key := threadID + "_supervisor"

	target, err := s.route(ctx, message, s.memory.history(key))
	if err != nil {
		logger.WarnContext(ctx, "Routing failed, defaulting to order agent", slog.Any("error", err))
		target = routeOrder
	}
	switch target {
	case routeOrder, routeCustomerService, routeFinish:
	default:
		target = routeOrder
	}

	s.memory.append(key,
		llms.Turn{Role: llms.TurnRoleUser, Content: message},
		llms.Turn{Role: llms.TurnRoleAssistant, Content: string(target)},
	)
	return target
}
