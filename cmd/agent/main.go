package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/agent"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/tool"
)

const systemPrompt = `You are a helpful research assistant. Use the web_search tool when a question needs current or factual information you are not sure about. Cite the sources you used.`

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	registry := tool.NewRegistry().Add(
		tool.NewWebSearchTool(cfg.searcher),
	)

	a := agent.New(cfg.provider, registry)

	fmt.Println("Research Agent")
	fmt.Printf("  Provider: %s\n", cfg.providerLabel)
	fmt.Printf("  Search:   %s\n", cfg.searchLabel)
	fmt.Printf("  Budget:   %d tool calls, %d steps per question\n", cfg.maxToolCalls, cfg.maxSteps)
	fmt.Println("Type a question, or \"quit\" to exit.")
	fmt.Println()

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	// The conversation persists across questions; budgets reset per question.
	conversation := []ai.Message{ai.NewSystemMessage(systemPrompt)}

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		conversation = append(conversation, ai.NewUserMessage(line))

		result, err := a.Run(ctx, conversation,
			agent.WithMaxToolCalls(cfg.maxToolCalls),
			agent.WithMaxSteps(cfg.maxSteps),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			// Drop the failed turn so the next question starts clean.
			conversation = conversation[:len(conversation)-1]
			continue
		}

		// Carry the full run history (tool calls included) into the
		// next turn.
		conversation = result.Messages()

		fmt.Println()
		fmt.Println(result.Text())
		if result.ToolCallRounds > 0 {
			fmt.Printf("\n[%d search round(s), %d step(s), %d in / %d out tokens]\n",
				result.ToolCallRounds, result.Steps,
				result.TotalUsage.InputTokens, result.TotalUsage.OutputTokens)
		}
		if result.Termination == agent.TerminationToolBudget {
			fmt.Println("[answer given with remaining knowledge: tool budget reached]")
		}
		fmt.Println()
	}
}
