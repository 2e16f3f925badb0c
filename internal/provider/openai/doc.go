// Package openai implements the ChatProvider interface using the official
// OpenAI Go SDK. It also serves any OpenAI-compatible endpoint (such as
// MiMo or other hosted gateways) via WithBaseURL.
package openai
