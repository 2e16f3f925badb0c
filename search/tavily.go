package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/internal/retry"
)

const tavilyEndpoint = "https://api.tavily.com/search"

// Tavily calls the Tavily search API.
type Tavily struct {
	apiKey     string
	depth      string
	maxResults int
	endpoint   string
	client     *http.Client
	retryCfg   retry.Config
}

// TavilyOption configures the Tavily provider.
type TavilyOption func(*Tavily)

// WithTavilyDepth sets Tavily's depth parameter ("basic" or "advanced").
// Default is "basic".
func WithTavilyDepth(depth string) TavilyOption {
	return func(t *Tavily) {
		t.depth = depth
	}
}

// WithTavilyMaxResults bounds the number of results returned.
// Default is DefaultMaxResults.
func WithTavilyMaxResults(n int) TavilyOption {
	return func(t *Tavily) {
		t.maxResults = n
	}
}

// WithTavilyHTTPClient sets the HTTP client, useful for overriding the
// default 10 second timeout.
func WithTavilyHTTPClient(client *http.Client) TavilyOption {
	return func(t *Tavily) {
		t.client = client
	}
}

// WithTavilyRetryConfig sets the backoff configuration used on rate limits
// and transient failures.
func WithTavilyRetryConfig(cfg retry.Config) TavilyOption {
	return func(t *Tavily) {
		t.retryCfg = cfg
	}
}

// NewTavily constructs a Tavily search provider.
func NewTavily(apiKey string, opts ...TavilyOption) *Tavily {
	t := &Tavily{
		apiKey:     apiKey,
		depth:      "basic",
		maxResults: DefaultMaxResults,
		endpoint:   tavilyEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
		retryCfg: retry.Config{
			MaxAttempts:  5,
			InitialDelay: time.Second,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Search posts a query to Tavily and returns up to maxResults hits.
func (t *Tavily) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(t.apiKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("tavily: query is empty")
	}

	body := map[string]any{
		"query":       query,
		"api_key":     t.apiKey,
		"depth":       t.depth,
		"max_results": t.maxResults,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	return retry.Do(ctx, t.retryCfg, func() ([]Result, error) {
		return t.doSearch(ctx, payload)
	})
}

func (t *Tavily) doSearch(ctx context.Context, payload []byte) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		msg := fmt.Sprintf("tavily: http %d", resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, ai.NewTransientError(msg, resp.StatusCode, nil)
		}
		return nil, ai.NewPermanentError(msg, resp.StatusCode, nil)
	}

	var response struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("tavily: decode response: %w", err)
	}

	results := make([]Result, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, Result{Title: r.Title, URL: r.URL, Snippet: r.Content})
		if len(results) >= t.maxResults {
			break
		}
	}
	return results, nil
}

var _ Provider = (*Tavily)(nil)
