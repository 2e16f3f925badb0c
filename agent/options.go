package agent

import (
	"time"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
)

// Options contains configuration for agent execution.
type Options struct {
	// MaxToolCalls limits the number of tool-execution rounds per run.
	// When the budget is spent and the model still requests tools, the
	// run terminates with the text of that response. Default is 3.
	MaxToolCalls int

	// MaxSteps limits the number of model calls per run, independent of
	// the tool budget. Set to 0 for unlimited (not recommended).
	// Default is 10.
	MaxSteps int

	// Timeout sets a deadline for the entire run.
	// A value of 0 means no timeout (context deadline applies).
	Timeout time.Duration

	// HandlerTimeout sets the timeout for each individual tool handler.
	// A value of 0 means no per-handler timeout. Default is 30 seconds.
	HandlerTimeout time.Duration

	// SystemPrompt is prepended to the conversation when the caller's
	// messages do not already start with a system message.
	SystemPrompt string

	// ChatOptions are passed through to the underlying ChatProvider.
	ChatOptions []ai.Option
}

// Option is a functional option for configuring agent execution.
type Option func(*Options)

// WithMaxToolCalls sets the per-run tool-execution budget.
// Default is 3.
func WithMaxToolCalls(n int) Option {
	return func(o *Options) {
		o.MaxToolCalls = n
	}
}

// WithMaxSteps sets the maximum number of model calls per run.
// Default is 10. Set to 0 for unlimited (not recommended).
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithTimeout sets a deadline for the entire run.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}

// WithHandlerTimeout sets the timeout for each individual tool handler.
// Default is 30 seconds. Set to 0 for no per-handler timeout.
func WithHandlerTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.HandlerTimeout = d
	}
}

// WithSystemPrompt sets the system message for the run.
func WithSystemPrompt(prompt string) Option {
	return func(o *Options) {
		o.SystemPrompt = prompt
	}
}

// WithChatOptions passes options through to the ChatProvider.
// These options are applied to every chat call made by the agent.
func WithChatOptions(opts ...ai.Option) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, opts...)
	}
}

// WithModel is a convenience option to set the model for chat calls.
func WithModel(model string) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, ai.WithModel(model))
	}
}

// WithMaxTokens is a convenience option to set max tokens for chat calls.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, ai.WithMaxTokens(n))
	}
}

// WithTemperature is a convenience option to set temperature for chat calls.
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, ai.WithTemperature(t))
	}
}

// ApplyOptions applies functional options to an Options struct with defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		MaxToolCalls:   3,
		MaxSteps:       10,
		HandlerTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
