package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
)

// DefaultChatModel is used when no model is configured on the client
// or supplied per-request.
const DefaultChatModel = "gpt-4o-mini"

// Client wraps the OpenAI SDK to implement ai.ChatProvider.
type Client struct {
	client *openai.Client
	model  string
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		model: DefaultChatModel,
	}
	requestOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	for _, opt := range opts {
		requestOpts = opt(c, requestOpts)
	}
	client := openai.NewClient(requestOpts...)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client, []option.RequestOption) []option.RequestOption

// WithModel sets the default model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client, ro []option.RequestOption) []option.RequestOption {
		c.model = model
		return ro
	}
}

// WithBaseURL points the client at an OpenAI-compatible endpoint,
// e.g. "https://api.example.com/v1" for a hosted gateway.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client, ro []option.RequestOption) []option.RequestOption {
		return append(ro, option.WithBaseURL(baseURL))
	}
}

// Chat sends a conversation and returns a complete response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)
	model := c.model
	if options.Model != "" {
		model = options.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: convertMessages(messages),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.Temperature != nil {
		params.Temperature = openai.Float(*options.Temperature)
	}
	if len(options.Tools) > 0 {
		params.Tools = convertTools(options.Tools)
		if options.ToolChoice != "" {
			params.ToolChoice = convertToolChoice(options.ToolChoice)
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	return &ai.Response{
		Content:      resp.Choices[0].Message.Content,
		FinishReason: string(resp.Choices[0].FinishReason),
		Usage: ai.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
		ToolCalls: extractToolCalls(resp.Choices[0].Message),
	}, nil
}

var _ ai.ChatProvider = (*Client)(nil)
