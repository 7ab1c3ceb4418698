// Package agents implements the conversational side of the sandwich shop
// assistant: a supervisor that routes each customer utterance to a
// specialized agent (order taking or customer service) and streams the
// selected agent's response back item by item.
package agents

import (
	"context"

	"github.com/counterline/voice-core/core/llms"
)

// Agent produces a streamed response to a single customer utterance.
//
// The returned iterator yields StreamItems in the order they are produced
// and stops early if the consumer stops. A yielded error ends the stream.
type Agent interface {
	Respond(ctx context.Context, message string, threadID string) func(yield func(StreamItem, error) bool)
}

// StreamItem is one item of an agent's streamed response, either an
// AssistantFragment or a ToolResultMessage.
type StreamItem interface {
	streamItem()
}

// AssistantFragment carries a piece of assistant output: a fragment of
// response text, tool invocations the assistant decided on, or both.
type AssistantFragment struct {
	Text      string
	ToolCalls []llms.ToolCall
}

func (AssistantFragment) streamItem() {}

// ToolResultMessage reports the outcome of one executed tool call. ID
// matches the ID of the corresponding call in a preceding fragment.
type ToolResultMessage struct {
	ID       string
	Name     string
	Response string
}

func (ToolResultMessage) streamItem() {}
