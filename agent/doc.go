// Package agent implements an autonomous tool-calling loop on top of a
// ChatProvider and a tool registry.
//
// Each Run alternates between asking the model for the next step and
// executing the tool calls it requests. The loop ends when the model
// answers without requesting tools, when the per-run tool budget is
// spent, or when the step ceiling is reached. Budgets are scoped to the
// run: a new Run on the same Agent starts with fresh counters.
//
// Basic usage:
//
//	registry := tool.NewRegistry().Add(
//	    tool.NewWebSearchTool(search.NewTavily(apiKey)),
//	)
//	a := agent.New(provider, registry)
//	result, err := a.Run(ctx, []ai.Message{ai.NewUserMessage("What is the Nvidia stock price?")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Response.Content)
package agent
