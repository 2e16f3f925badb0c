// Package anthropic implements the ChatProvider interface using the
// official Anthropic Go SDK.
package anthropic
