package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/search"
)

// stubSearchProvider returns canned results or a fixed error.
type stubSearchProvider struct {
	results   []search.Result
	err       error
	lastQuery string
}

func (s *stubSearchProvider) Search(ctx context.Context, query string) ([]search.Result, error) {
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func TestNewWebSearchTool(t *testing.T) {
	t.Run("formats provider results", func(t *testing.T) {
		stub := &stubSearchProvider{
			results: []search.Result{
				{Title: "Nvidia stock hits new high", URL: "https://example.com/nvda", Snippet: "Shares rose 3% today."},
				{Title: "Market recap", URL: "https://example.com/recap", Snippet: "Tech led the gains."},
			},
		}
		r := NewRegistry().Add(NewWebSearchTool(stub))

		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      WebSearchToolName,
			Arguments: `{"query":"nvidia stock price"}`,
		})

		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "nvidia stock price", stub.lastQuery)
		assert.Contains(t, result.Content, "1. Nvidia stock hits new high")
		assert.Contains(t, result.Content, "https://example.com/nvda")
		assert.Contains(t, result.Content, "2. Market recap")
	})

	t.Run("search failure becomes an error result", func(t *testing.T) {
		stub := &stubSearchProvider{err: errors.New("search API unavailable")}
		r := NewRegistry().Add(NewWebSearchTool(stub))

		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      WebSearchToolName,
			Arguments: `{"query":"anything"}`,
		})

		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, result.Content, "search API unavailable")
	})

	t.Run("empty results report no results", func(t *testing.T) {
		stub := &stubSearchProvider{}
		r := NewRegistry().Add(NewWebSearchTool(stub))

		result, err := r.Execute(context.Background(), ai.ToolCall{
			ID:        "call_1",
			Name:      WebSearchToolName,
			Arguments: `{"query":"obscure query"}`,
		})

		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Equal(t, "No results found.", result.Content)
	})

	t.Run("schema exposes the query parameter", func(t *testing.T) {
		r := NewRegistry().Add(NewWebSearchTool(&stubSearchProvider{}))

		def, ok := r.GetTool(WebSearchToolName)
		require.True(t, ok)
		assert.Contains(t, string(def.Parameters), `"query"`)
	})
}

func TestNewWebSearchToolNamed(t *testing.T) {
	tavily := &stubSearchProvider{results: []search.Result{{Title: "A", URL: "https://a", Snippet: "a"}}}
	ddg := &stubSearchProvider{results: []search.Result{{Title: "B", URL: "https://b", Snippet: "b"}}}

	r := NewRegistry().Add(
		NewWebSearchTool(tavily),
		NewWebSearchToolNamed("duckduckgo_search", "Search the web via DuckDuckGo.", ddg),
	)

	assert.Equal(t, 2, r.Len())

	result, err := r.Execute(context.Background(), ai.ToolCall{
		ID:        "call_1",
		Name:      "duckduckgo_search",
		Arguments: `{"query":"fallback"}`,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "1. B")
	assert.Equal(t, "fallback", ddg.lastQuery)
	assert.Empty(t, tavily.lastQuery)
}
