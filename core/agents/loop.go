package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/counterline/voice-core/core/llms"
)

// runAgent runs one conversational turn with a specialized agent. It
// streams the model's response, executes requested tools, and re-prompts
// with the tool results until the model finishes a response without
// requesting more tools. The completed turn is recorded in memory under
// the agent's own thread key.
func (s *Supervisor) runAgent(
	ctx context.Context,
	yield func(StreamItem, error) bool,
	agentName string,
	threadID string,
	message string,
	systemPrompt string,
	tools []llms.Tool,
) {
	key := threadID + "_" + agentName
	history := s.memory.history(key)

	userTurn := llms.Turn{Role: llms.TurnRoleUser, Content: message}
	turn := llms.Turn{Role: llms.TurnRoleAssistant}
	for {
		turns := append(append([]llms.Turn{}, history...), userTurn)
		if turn.Content != "" || len(turn.ToolCalls) > 0 {
			turns = append(turns, turn)
		}

		stream := s.prompt(ctx, "", systemPrompt,
			llms.WithTurns(turns...),
			llms.WithTools(tools...),
		)

		var content strings.Builder
		var calls []llms.ToolCall
		for chunk, err := range stream.Chunks(ctx) {
			if err != nil {
				yield(nil, fmt.Errorf("failed to stream agent response: %w", err))
				return
			}

			switch chunk := chunk.(type) {
			case llms.StreamContentChunk:
				if chunk.Content() == "" {
					continue
				}
				content.WriteString(chunk.Content())
				if !yield(AssistantFragment{Text: chunk.Content()}, nil) {
					return
				}

			case llms.StreamToolCallChunk:
				call := chunk.ToolCall()
				if call.ID == "" {
					call.ID = uuid.NewString()
				}
				calls = append(calls, call)
			}
		}

		turn.Content += content.String()

		if len(calls) == 0 {
			break
		}

		if !yield(AssistantFragment{ToolCalls: calls}, nil) {
			return
		}
		for _, call := range calls {
			executed := s.executeTool(ctx, call, tools)
			turn.ToolCalls = append(turn.ToolCalls, executed)
			if !yield(ToolResultMessage{ID: executed.ID, Name: executed.Name, Response: executed.Response}, nil) {
				return
			}
		}
	}

	s.memory.append(key, userTurn, turn)
}

// executeTool runs one requested tool. Failures are reported back to the
// model as the tool's response instead of aborting the turn.
func (s *Supervisor) executeTool(ctx context.Context, call llms.ToolCall, tools []llms.Tool) llms.ToolCall {
	ctx, span := tracer.Start(ctx, "execute tool")
	defer span.End()
	span.SetAttributes(attribute.String("tool.name", call.Name))

	for _, tool := range tools {
		if tool.Function.Name != call.Name {
			continue
		}

		response, err := tool.Execute(call.Arguments)
		if err != nil {
			err = fmt.Errorf("failed to execute tool %q: %w", call.Name, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.WarnContext(ctx, "Tool execution failed", slog.Any("error", err))
			call.Response = err.Error()
			return call
		}
		call.Response = response
		return call
	}

	err := fmt.Errorf("tool not found: %s", call.Name)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	call.Response = err.Error()
	return call
}
