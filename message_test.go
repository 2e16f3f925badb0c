package researchagent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMessageID(t *testing.T) {
	id1 := GenerateMessageID()
	id2 := GenerateMessageID()

	assert.True(t, strings.HasPrefix(id1, "msg-"))
	assert.NotEqual(t, id1, id2)
}

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	assert.Equal(t, RoleUser, msg.Role)
	assert.Equal(t, "hello", msg.Content)
	assert.False(t, msg.HasToolCalls())
}

func TestNewSystemMessage(t *testing.T) {
	msg := NewSystemMessage("you are a research assistant")

	assert.Equal(t, RoleSystem, msg.Role)
	assert.Equal(t, "you are a research assistant", msg.Content)
}

func TestMessage_HasToolCalls(t *testing.T) {
	msg := Message{
		Role:      RoleAssistant,
		ToolCalls: []ToolCall{{ID: "call_1", Name: "web_search", Arguments: `{"query":"x"}`}},
	}
	assert.True(t, msg.HasToolCalls())
}

func TestNewToolResultMessage(t *testing.T) {
	msg := NewToolResultMessage(
		ToolResult{ToolCallID: "call_1", Content: "result one"},
		ToolResult{ToolCallID: "call_2", Content: "no results", IsError: true},
	)

	assert.Equal(t, RoleTool, msg.Role)
	assert.Len(t, msg.ToolResults, 2)
	assert.Equal(t, "call_1", msg.ToolResults[0].ToolCallID)
	assert.True(t, msg.ToolResults[1].IsError)
}

func TestUsage_Add(t *testing.T) {
	u := Usage{InputTokens: 10, OutputTokens: 20}
	u.Add(Usage{InputTokens: 5, OutputTokens: 7})

	assert.Equal(t, 15, u.InputTokens)
	assert.Equal(t, 27, u.OutputTokens)
}
