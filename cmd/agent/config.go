package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/internal/provider/anthropic"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/internal/provider/openai"
	"github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily/search"
)

// config holds everything read from the environment.
type config struct {
	providerLabel string
	provider      ai.ChatProvider
	searchLabel   string
	searcher      search.Provider
	maxToolCalls  int
	maxSteps      int
}

// loadConfig reads .env (if present) and the process environment and
// assembles the chat provider and search backend.
//
// Provider selection, first match wins:
//  1. MIMO_API_KEY + MIMO_BASE_URL: any OpenAI-compatible endpoint
//  2. OPENAI_API_KEY
//  3. ANTHROPIC_API_KEY
//
// Search selection: TAVILY_API_KEY picks Tavily, otherwise DuckDuckGo
// (no key required).
func loadConfig() (*config, error) {
	godotenv.Load()

	cfg := &config{
		maxToolCalls: envInt("MAX_TOOL_CALLS", 3),
		maxSteps:     envInt("MAX_STEPS", 10),
	}

	switch {
	case os.Getenv("MIMO_API_KEY") != "" && os.Getenv("MIMO_BASE_URL") != "":
		opts := []openai.ClientOption{openai.WithBaseURL(os.Getenv("MIMO_BASE_URL"))}
		if model := os.Getenv("MIMO_MODEL"); model != "" {
			opts = append(opts, openai.WithModel(model))
		}
		cfg.provider = openai.New(os.Getenv("MIMO_API_KEY"), opts...)
		cfg.providerLabel = "MiMo (OpenAI-compatible)"
	case os.Getenv("OPENAI_API_KEY") != "":
		cfg.provider = openai.New(os.Getenv("OPENAI_API_KEY"))
		cfg.providerLabel = "OpenAI"
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		cfg.provider = anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
		cfg.providerLabel = "Anthropic"
	default:
		return nil, fmt.Errorf("no API key found: set MIMO_API_KEY+MIMO_BASE_URL, OPENAI_API_KEY, or ANTHROPIC_API_KEY")
	}

	maxResults := envInt("SEARCH_RESULTS", search.DefaultMaxResults)
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		cfg.searcher = search.NewTavily(key, search.WithTavilyMaxResults(maxResults))
		cfg.searchLabel = "Tavily"
	} else {
		cfg.searcher = search.NewDuckDuckGo(search.WithDuckDuckGoMaxResults(maxResults))
		cfg.searchLabel = "DuckDuckGo"
	}

	return cfg, nil
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
