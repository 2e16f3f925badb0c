package researchagent

import "context"

// ChatProvider defines the interface for AI chat providers.
//
// A provider is the reasoning boundary of the agent: it receives the ordered
// message sequence plus tool schemas (via options) and returns one assistant
// response, which either carries tool calls or stands as the final answer.
// Determinism is not guaranteed; provider errors propagate to the caller.
type ChatProvider interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}
