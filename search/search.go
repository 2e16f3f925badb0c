package search

import (
	"context"
	"fmt"
	"strings"
)

// DefaultMaxResults bounds how many results a provider returns when not
// configured otherwise.
const DefaultMaxResults = 3

// Result represents a single web search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Provider performs a web search and returns a bounded list of results.
type Provider interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// FormatResults renders results as numbered snippets with source references,
// suitable for feeding back to a model as a tool observation.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return "No results found."
	}

	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, r.Title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", r.Snippet)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
