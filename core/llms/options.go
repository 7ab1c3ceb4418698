package llms

type PromptOptions struct {
	Instructions    string
	Turns           []Turn
	Tools           []Tool
	ForcedToolsCall bool
}

type PromptOption func(*PromptOptions)

// WithTurns appends prior conversation turns to the prompt.
func WithTurns(turns ...Turn) PromptOption {
	return func(o *PromptOptions) {
		o.Turns = append(o.Turns, turns...)
	}
}

// WithTools adds tools to the prompt.
func WithTools(tools ...Tool) PromptOption {
	return func(o *PromptOptions) {
		o.Tools = append(o.Tools, tools...)
	}
}

// WithForcedTools forces the use of tools in the prompt, replacing any
// previously added tools.
func WithForcedTools(tools ...Tool) PromptOption {
	return func(o *PromptOptions) {
		o.Tools = tools
		o.ForcedToolsCall = true
	}
}
