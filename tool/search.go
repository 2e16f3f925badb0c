package tool

import (
	"context"

	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/search"
)

// WebSearchToolName is the name under which the web search tool is registered.
const WebSearchToolName = "web_search"

// webSearchArgs defines arguments for the web search tool.
type webSearchArgs struct {
	Query string `json:"query" desc:"The search query to run" required:"true"`
}

// NewWebSearchTool creates a web search tool backed by the given provider.
// Results come back as numbered snippets with source URLs; a failed search
// surfaces as an error observation rather than aborting the agent run.
//
//	registry := tool.NewRegistry().Add(
//	    tool.NewWebSearchTool(search.NewTavily(apiKey)),
//	)
func NewWebSearchTool(provider search.Provider) Registration {
	return Func(WebSearchToolName,
		"Search the web for current information. Returns the top results with title, URL, and snippet.",
		func(ctx context.Context, args webSearchArgs) (string, error) {
			results, err := provider.Search(ctx, args.Query)
			if err != nil {
				return "", err
			}
			return search.FormatResults(results), nil
		},
	)
}

// NewWebSearchToolNamed is like NewWebSearchTool but registers the tool under
// a custom name, so multiple search backends can coexist in one registry
// (e.g. "web_search" on Tavily plus "duckduckgo_search" as a fallback).
func NewWebSearchToolNamed(name, description string, provider search.Provider) Registration {
	return Func(name, description,
		func(ctx context.Context, args webSearchArgs) (string, error) {
			results, err := provider.Search(ctx, args.Query)
			if err != nil {
				return "", err
			}
			return search.FormatResults(results), nil
		},
	)
}
