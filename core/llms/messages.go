package llms

// Response is a single response from an LLM.
type Response struct {
	Content   string
	ToolCalls []ToolCall
}

// Turn is a single turn taken in a conversation.
type Turn struct {
	Role TurnRole

	// Content is the content of the turn.
	// In the user's turn it is the prompt,
	// in the assistant's turn it is the response.
	Content   string
	ToolCalls []ToolCall
}

// ToolCall is one tool invocation requested by the assistant, together with
// the response produced by executing it.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
	Response  string
}

// TurnRole describes who took the turn.
type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)
