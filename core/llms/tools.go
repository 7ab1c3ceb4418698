package llms

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ParameterBase describes one tool parameter in the subset of JSON schema
// the chat-completions APIs accept.
type ParameterBase struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Tool is a function the assistant may call during a turn.
type Tool struct {
	Type     string
	Function ToolFunction

	execute func(arguments string) (string, error)
}

type ToolFunction struct {
	Name        string
	Description string
	Parameters  ToolParameters
}

type ToolParameters struct {
	Type       string                   `json:"type"`
	Properties map[string]ParameterBase `json:"properties"`
	Required   []string                 `json:"required,omitempty"`
}

// NewTool creates a tool whose arguments are JSON-decoded into T before the
// execute function runs. All declared parameters are marked required.
func NewTool[T any](name, description string, parameters map[string]ParameterBase, execute func(parameters T) (string, error)) Tool {
	required := make([]string, 0, len(parameters))
	for parameter := range parameters {
		required = append(required, parameter)
	}
	slices.Sort(required)

	return Tool{
		Type: "function",
		Function: ToolFunction{
			Name:        name,
			Description: description,
			Parameters: ToolParameters{
				Type:       "object",
				Properties: parameters,
				Required:   required,
			},
		},
		execute: func(arguments string) (string, error) {
			var decoded T
			if arguments != "" {
				if err := json.Unmarshal([]byte(arguments), &decoded); err != nil {
					return "", fmt.Errorf("failed to decode tool arguments: %w", err)
				}
			}
			return execute(decoded)
		},
	}
}

// Execute runs the tool against raw JSON arguments.
func (t Tool) Execute(arguments string) (string, error) {
	if t.execute == nil {
		return "", fmt.Errorf("tool %q has no executor", t.Function.Name)
	}
	return t.execute(arguments)
}
