package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/internal/retry"
)

const ddgEndpoint = "https://lite.duckduckgo.com/lite/"

// ddgRateLimit enforces a global rate limit of 1 query per second across all
// DuckDuckGo instances and goroutines.
var ddgRateLimit struct {
	mu   sync.Mutex
	last time.Time
}

// DuckDuckGo implements a searcher using DuckDuckGo's HTML lite interface.
// It requires no API key.
type DuckDuckGo struct {
	maxResults int
	endpoint   string
	client     *http.Client
	retryCfg   retry.Config
}

// DuckDuckGoOption configures the DuckDuckGo provider.
type DuckDuckGoOption func(*DuckDuckGo)

// WithDuckDuckGoMaxResults bounds the number of results returned.
// Default is DefaultMaxResults.
func WithDuckDuckGoMaxResults(n int) DuckDuckGoOption {
	return func(d *DuckDuckGo) {
		d.maxResults = n
	}
}

// WithDuckDuckGoHTTPClient sets the HTTP client, useful for overriding the
// default 15 second timeout.
func WithDuckDuckGoHTTPClient(client *http.Client) DuckDuckGoOption {
	return func(d *DuckDuckGo) {
		d.client = client
	}
}

// NewDuckDuckGo creates a DuckDuckGo searcher with a modest timeout.
func NewDuckDuckGo(opts ...DuckDuckGoOption) *DuckDuckGo {
	d := &DuckDuckGo{
		maxResults: DefaultMaxResults,
		endpoint:   ddgEndpoint,
		client:     &http.Client{Timeout: 15 * time.Second},
		retryCfg: retry.Config{
			MaxAttempts:  4,
			InitialDelay: time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Search scrapes the DuckDuckGo lite HTML page for results.
func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("duckduckgo: query is empty")
	}

	if err := ddgWaitTurn(ctx); err != nil {
		return nil, err
	}

	formData := url.Values{}
	formData.Set("q", query)
	encoded := formData.Encode()

	return retry.Do(ctx, d.retryCfg, func() ([]Result, error) {
		return d.doSearch(ctx, encoded)
	})
}

// ddgWaitTurn blocks until the global 1 QPS budget allows another query.
func ddgWaitTurn(ctx context.Context) error {
	ddgRateLimit.mu.Lock()
	if wait := time.Until(ddgRateLimit.last.Add(time.Second)); wait > 0 {
		ddgRateLimit.mu.Unlock()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
		ddgRateLimit.mu.Lock()
	}
	ddgRateLimit.last = time.Now()
	ddgRateLimit.mu.Unlock()
	return nil
}

func (d *DuckDuckGo) doSearch(ctx context.Context, form string) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, strings.NewReader(form))
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		msg := fmt.Sprintf("duckduckgo: http %d", resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, ai.NewTransientError(msg, resp.StatusCode, nil)
		}
		return nil, ai.NewPermanentError(msg, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: read response: %w", err)
	}

	return d.parseResults(string(body)), nil
}

var (
	// Result links in the lite page: <a ... class='result-link' ... href='URL'>TITLE</a>,
	// with class and href in either order.
	ddgLinkPattern  = regexp.MustCompile(`<a[^>]*class=['"]result-link['"][^>]*href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	ddgLinkPattern2 = regexp.MustCompile(`<a[^>]*href=['"]([^'"]+)['"][^>]*class=['"]result-link['"][^>]*>([^<]+)</a>`)

	ddgSnippetPattern = regexp.MustCompile(`<td[^>]*class=['"]result-snippet['"][^>]*>([^<]+(?:<[^>]+>[^<]*</[^>]+>)*[^<]*)</td>`)

	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// parseResults extracts search results from the DuckDuckGo lite HTML.
func (d *DuckDuckGo) parseResults(html string) []Result {
	matches := ddgLinkPattern.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		matches = ddgLinkPattern2.FindAllStringSubmatch(html, -1)
	}
	snippets := ddgSnippetPattern.FindAllStringSubmatch(html, -1)

	var results []Result
	for i, match := range matches {
		if len(match) < 3 {
			continue
		}

		urlStr := strings.TrimSpace(match[1])
		title := cleanHTML(match[2])
		if urlStr == "" || title == "" {
			continue
		}

		snippet := ""
		if i < len(snippets) && len(snippets[i]) > 1 {
			snippet = cleanHTML(snippets[i][1])
		}

		results = append(results, Result{Title: title, URL: urlStr, Snippet: snippet})
		if len(results) >= d.maxResults {
			break
		}
	}

	if len(results) == 0 {
		results = d.fallbackParse(html)
	}
	return results
}

// fallbackParse extracts any external links when the structured patterns
// find nothing (the lite page markup shifts occasionally).
func (d *DuckDuckGo) fallbackParse(html string) []Result {
	linkPattern := regexp.MustCompile(`<a[^>]+href=['"]([^'"]+)['"][^>]*>([^<]+)</a>`)
	matches := linkPattern.FindAllStringSubmatch(html, -1)

	var results []Result
	seen := make(map[string]bool)
	for _, match := range matches {
		if len(match) < 3 {
			continue
		}

		urlStr := strings.TrimSpace(match[1])
		title := cleanHTML(match[2])

		if strings.Contains(urlStr, "duckduckgo.com") ||
			strings.HasPrefix(urlStr, "/") ||
			strings.HasPrefix(urlStr, "#") ||
			strings.HasPrefix(urlStr, "javascript:") {
			continue
		}
		if len(title) < 5 || seen[urlStr] {
			continue
		}
		seen[urlStr] = true

		results = append(results, Result{Title: title, URL: urlStr})
		if len(results) >= d.maxResults {
			break
		}
	}
	return results
}

// cleanHTML strips tags and decodes common entities.
func cleanHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
	return strings.TrimSpace(replacer.Replace(s))
}

var _ Provider = (*DuckDuckGo)(nil)
