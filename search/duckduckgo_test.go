package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ddgSampleHTML = `
<html><body><table>
<tr><td><a rel="nofollow" class='result-link' href='https://example.com/one'>First Result</a></td></tr>
<tr><td class='result-snippet'>Snippet for the first result.</td></tr>
<tr><td><a rel="nofollow" class='result-link' href='https://example.com/two'>Second &amp; Result</a></td></tr>
<tr><td class='result-snippet'>Snippet for the second result.</td></tr>
<tr><td><a rel="nofollow" class='result-link' href='https://example.com/three'>Third Result</a></td></tr>
<tr><td class='result-snippet'>Snippet three.</td></tr>
<tr><td><a rel="nofollow" class='result-link' href='https://example.com/four'>Fourth Result</a></td></tr>
</table></body></html>`

func TestDuckDuckGo_ParseResults(t *testing.T) {
	d := NewDuckDuckGo()

	results := d.parseResults(ddgSampleHTML)
	require.Len(t, results, 3) // bounded by DefaultMaxResults

	assert.Equal(t, "First Result", results[0].Title)
	assert.Equal(t, "https://example.com/one", results[0].URL)
	assert.Equal(t, "Snippet for the first result.", results[0].Snippet)

	// HTML entities are decoded
	assert.Equal(t, "Second & Result", results[1].Title)
}

func TestDuckDuckGo_FallbackParse(t *testing.T) {
	html := `
<html><body>
<a href="/internal">Navigation link text</a>
<a href="https://duckduckgo.com/about">About DuckDuckGo</a>
<a href="https://example.org/page">External result title</a>
<a href="https://example.org/page">External result title</a>
</body></html>`

	d := NewDuckDuckGo()
	results := d.parseResults(html)

	require.Len(t, results, 1) // internal links skipped, dupes collapsed
	assert.Equal(t, "https://example.org/page", results[0].URL)
	assert.Equal(t, "External result title", results[0].Title)
}

func TestDuckDuckGo_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "golang", r.PostForm.Get("q"))
		fmt.Fprint(w, ddgSampleHTML)
	}))
	defer srv.Close()

	d := NewDuckDuckGo(WithDuckDuckGoMaxResults(2))
	d.endpoint = srv.URL

	results, err := d.Search(context.Background(), "golang")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestDuckDuckGo_Search_EmptyQuery(t *testing.T) {
	d := NewDuckDuckGo()
	_, err := d.Search(context.Background(), "")
	assert.Error(t, err)
}

func TestCleanHTML(t *testing.T) {
	assert.Equal(t, "A & B", cleanHTML("  A &amp; B  "))
	assert.Equal(t, "bold text", cleanHTML("<b>bold</b> text"))
	assert.Equal(t, `say "hi"`, cleanHTML("say &quot;hi&quot;"))
}

func TestFormatResults(t *testing.T) {
	t.Run("numbered with sources", func(t *testing.T) {
		out := FormatResults([]Result{
			{Title: "NVDA Quote", URL: "https://example.com/nvda", Snippet: "$189.50"},
			{Title: "Nvidia News", URL: "https://example.com/news"},
		})

		assert.Contains(t, out, "1. NVDA Quote")
		assert.Contains(t, out, "https://example.com/nvda")
		assert.Contains(t, out, "$189.50")
		assert.Contains(t, out, "2. Nvidia News")
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No results found.", FormatResults(nil))
	})
}
