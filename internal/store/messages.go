// Package store holds conversation state for agent runs.
//
// A MessageStore is strictly append-only: messages are never rewritten or
// reordered once added, so the sequence can serve as the complete
// conversational state of a run.
package store

import (
	"sync"

	ai "github.com/TIlak123456/p1-RA-MiMo2-LG-DDG-Tavily"
)

// MessageStore manages an append-only conversation history.
// It is safe for concurrent use.
type MessageStore struct {
	mu       sync.RWMutex
	messages []ai.Message
}

// NewMessageStore creates an empty MessageStore.
func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make([]ai.Message, 0),
	}
}

// NewMessageStoreFrom creates a MessageStore initialized with a copy of the
// given messages. The caller's slice is never mutated.
func NewMessageStoreFrom(messages []ai.Message) *MessageStore {
	ms := NewMessageStore()
	if len(messages) > 0 {
		ms.messages = make([]ai.Message, len(messages))
		copy(ms.messages, messages)
	}
	return ms
}

// Messages returns a copy of all messages.
func (m *MessageStore) Messages() []ai.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]ai.Message, len(m.messages))
	copy(result, m.messages)
	return result
}

// Append adds messages to the store.
func (m *MessageStore) Append(msgs ...ai.Message) {
	if len(msgs) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msgs...)
}

// Len returns the number of messages.
func (m *MessageStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.messages)
}

// Last returns the last n messages. If n > Len(), returns all messages.
func (m *MessageStore) Last(n int) []ai.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n <= 0 {
		return nil
	}

	start := len(m.messages) - n
	if start < 0 {
		start = 0
	}

	result := make([]ai.Message, len(m.messages)-start)
	copy(result, m.messages[start:])
	return result
}

// Clone creates a deep copy of the MessageStore.
func (m *MessageStore) Clone() *MessageStore {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return NewMessageStoreFrom(m.messages)
}
