package agent

import (
	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/internal/store"
)

// TerminationReason describes why a run ended.
type TerminationReason string

const (
	// TerminationComplete means the model answered without requesting tools.
	TerminationComplete TerminationReason = "complete"

	// TerminationToolBudget means the tool budget was spent while the
	// model still requested tools; the run ends with the text of that
	// response.
	TerminationToolBudget TerminationReason = "tool_budget"

	// TerminationMaxSteps means the model-call ceiling was reached.
	TerminationMaxSteps TerminationReason = "max_steps"

	// TerminationTimeout means the run deadline expired.
	TerminationTimeout TerminationReason = "timeout"

	// TerminationCancelled means the context was cancelled.
	TerminationCancelled TerminationReason = "cancelled"

	// TerminationError means the provider returned a fatal error.
	TerminationError TerminationReason = "error"
)

// Result contains the outcome of an agent run.
type Result struct {
	// Response is the final model response, nil when the run failed
	// before any response arrived.
	Response *ai.Response

	// Steps is the number of model calls made.
	Steps int

	// ToolCallRounds is the number of tool-execution rounds performed.
	ToolCallRounds int

	// Termination describes why the run ended.
	Termination TerminationReason

	// TotalUsage aggregates token usage across all model calls.
	TotalUsage ai.Usage

	// Error holds the fatal error when Termination is TerminationError.
	Error error

	history *store.MessageStore
}

// Messages returns the full conversation history of the run, including
// the caller's input, assistant turns, and tool results.
func (r *Result) Messages() []ai.Message {
	if r.history == nil {
		return nil
	}
	return r.history.Messages()
}

// MessageCount returns the number of messages in the run history.
func (r *Result) MessageCount() int {
	if r.history == nil {
		return 0
	}
	return r.history.Len()
}

// LastMessage returns the final message of the run history, or a zero
// Message when the history is empty.
func (r *Result) LastMessage() ai.Message {
	if r.history == nil {
		return ai.Message{}
	}
	last := r.history.Last(1)
	if len(last) == 0 {
		return ai.Message{}
	}
	return last[0]
}

// Text returns the content of the final response, or "" when the run
// produced no response.
func (r *Result) Text() string {
	if r.Response == nil {
		return ""
	}
	return r.Response.Content
}
