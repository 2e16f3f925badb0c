// Package search provides web search providers for the research agent.
//
// Available providers:
//
//   - Tavily: requires an API key, supports basic/advanced depth modes
//   - DuckDuckGo: free, no API key required (scrapes lite.duckduckgo.com)
//
// Both providers bound the number of returned results (default 3) and back
// off on HTTP 429 responses.
//
// # Tavily Example
//
//	provider := search.NewTavily("your-api-key")
//	results, err := provider.Search(ctx, "Nvidia stock price")
//
// # DuckDuckGo Example
//
//	provider := search.NewDuckDuckGo()
//	results, err := provider.Search(ctx, "golang web frameworks")
//
// # Custom Providers
//
// Implement the Provider interface to add your own search backend:
//
//	type Provider interface {
//	    Search(ctx context.Context, query string) ([]Result, error)
//	}
package search
