// Package researchagent provides the shared types for a tool-using research
// agent: conversation messages, tool call/result contracts, chat request
// options, and categorized errors.
//
// The package is conventionally imported as ai:
//
//	import ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
//
// The interesting parts live in the subpackages:
//
//   - agent: the reason/act loop bounded by a tool-call budget and a step ceiling
//   - tool: tool registry, typed handlers, and the web search tool
//   - search: Tavily and DuckDuckGo search providers
//   - internal/provider: ChatProvider implementations over the OpenAI and
//     Anthropic SDKs
//
// # Quick Start
//
//	provider := openai.New(apiKey, openai.WithBaseURL(baseURL), openai.WithModel("mimo-v2-flash"))
//	registry := tool.NewRegistry().Add(tool.NewWebSearchTool(search.NewTavily(tavilyKey)))
//
//	a := agent.New(provider, registry)
//	result, err := a.Run(ctx, []ai.Message{ai.NewUserMessage("What's Nvidia's stock price?")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Response.Content)
package researchagent
