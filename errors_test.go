package researchagent

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	t.Run("transient", func(t *testing.T) {
		err := NewTransientError("rate limited", 429, nil)

		assert.True(t, IsTransient(err))
		assert.False(t, IsPermanent(err))
		assert.True(t, err.Retryable())
		assert.Equal(t, 429, StatusCodeOf(err))
	})

	t.Run("permanent", func(t *testing.T) {
		err := NewPermanentError("invalid API key", 401, nil)

		assert.True(t, IsPermanent(err))
		assert.False(t, err.Retryable())
	})

	t.Run("user input", func(t *testing.T) {
		err := NewUserInputError("bad request", 400, nil)

		assert.True(t, IsUserInput(err))
		assert.False(t, err.Retryable())
	})
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewTransientError("request failed", 503, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestError_Wrapped(t *testing.T) {
	// Category checks must see through fmt.Errorf wrapping.
	inner := NewTransientError("overloaded", 529, nil)
	wrapped := fmt.Errorf("chat call: %w", inner)

	assert.True(t, IsTransient(wrapped))
	assert.Equal(t, 529, StatusCodeOf(wrapped))
}

func TestRetryAfterOf(t *testing.T) {
	err := NewTransientErrorWithRetry("rate limited", 429, 5*time.Second, nil)

	assert.Equal(t, 5*time.Second, RetryAfterOf(err))
	assert.Zero(t, RetryAfterOf(errors.New("plain")))
}
