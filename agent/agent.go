package agent

import (
	"context"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/internal/store"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/tool"
)

// Agent orchestrates autonomous tool-calling conversations.
type Agent struct {
	provider ai.ChatProvider
	registry *tool.Registry
}

// New creates a new Agent with the given chat provider and tool registry.
func New(provider ai.ChatProvider, registry *tool.Registry) *Agent {
	return &Agent{
		provider: provider,
		registry: registry,
	}
}

// Run executes the agent loop and returns the final result.
// This is a blocking call that runs until the agent completes.
//
// The input messages are never mutated; the run builds its own history
// and exposes it through Result.Messages. Budgets are per-run, so
// consecutive Runs on the same Agent each get the full tool budget.
func (a *Agent) Run(ctx context.Context, messages []ai.Message, opts ...Option) (*Result, error) {
	options := ApplyOptions(opts...)

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	history := store.NewMessageStoreFrom(messages)
	if options.SystemPrompt != "" && !startsWithSystem(messages) {
		history = store.NewMessageStoreFrom(
			append([]ai.Message{ai.NewSystemMessage(options.SystemPrompt)}, messages...),
		)
	}

	chatOpts := append([]ai.Option{ai.WithTools(a.registry.Tools())}, options.ChatOptions...)

	result := &Result{history: history}
	toolRounds := 0

	for {
		if reason := checkTermination(ctx, result.Steps, options); reason != "" {
			result.Termination = reason
			return result, nil
		}

		response, err := a.provider.Chat(ctx, history.Messages(), chatOpts...)
		if err != nil {
			result.Error = err
			result.Termination = TerminationError
			return result, err
		}

		result.Steps++
		result.Response = response
		result.TotalUsage.Add(response.Usage)

		// No tool calls = natural completion
		if len(response.ToolCalls) == 0 {
			history.Append(ai.Message{
				ID:      ai.GenerateMessageID(),
				Role:    ai.RoleAssistant,
				Content: response.Content,
			})
			result.Termination = TerminationComplete
			return result, nil
		}

		// Budget spent: the text of this response is the final answer,
		// the requested tool calls are dropped.
		if toolRounds >= options.MaxToolCalls {
			history.Append(ai.Message{
				ID:      ai.GenerateMessageID(),
				Role:    ai.RoleAssistant,
				Content: response.Content,
			})
			result.Termination = TerminationToolBudget
			return result, nil
		}

		toolRounds++
		result.ToolCallRounds = toolRounds

		history.Append(ai.Message{
			ID:        ai.GenerateMessageID(),
			Role:      ai.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		results := a.executeToolCalls(ctx, response.ToolCalls, options)
		history.Append(ai.NewToolResultMessage(results...))
	}
}

// executeToolCalls runs the requested tool calls in order. Handler and
// lookup failures become error results so the model can recover on the
// next step.
func (a *Agent) executeToolCalls(ctx context.Context, toolCalls []ai.ToolCall, options *Options) []ai.ToolResult {
	results := make([]ai.ToolResult, len(toolCalls))
	for i, tc := range toolCalls {
		results[i] = a.executeToolCall(ctx, tc, options)
	}
	return results
}

func (a *Agent) executeToolCall(ctx context.Context, tc ai.ToolCall, options *Options) ai.ToolResult {
	execCtx := ctx
	if options.HandlerTimeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, options.HandlerTimeout)
		defer cancel()
	}

	result, err := a.registry.Execute(execCtx, tc)
	if err != nil {
		// Tool not found or other registry error
		return ai.ToolResult{
			ToolCallID: tc.ID,
			Content:    err.Error(),
			IsError:    true,
		}
	}
	return result
}

func checkTermination(ctx context.Context, steps int, options *Options) TerminationReason {
	if ctx.Err() != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return TerminationTimeout
		}
		return TerminationCancelled
	}

	if options.MaxSteps > 0 && steps >= options.MaxSteps {
		return TerminationMaxSteps
	}

	return ""
}

func startsWithSystem(messages []ai.Message) bool {
	return len(messages) > 0 && messages[0].Role == ai.RoleSystem
}
