// Package retry provides generic retry logic with exponential backoff for
// transient errors, honoring server-provided Retry-After hints.
package retry

import (
	"math"
	"math/rand"
	"time"
)

// Config controls retry behavior.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the backoff delay.
	MaxDelay time.Duration

	// Multiplier scales the delay after each attempt.
	Multiplier float64

	// Jitter is the fraction of random variation applied to each delay
	// (0.1 means +/-10%). Zero disables jitter.
	Jitter float64
}

// DefaultConfig returns the standard retry configuration:
// 10 attempts with exponential backoff from 1s to 60s.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  10,
		InitialDelay: time.Second,
		MaxDelay:     60 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.1,
	}
}

// Disabled returns a configuration that performs a single attempt.
func Disabled() Config {
	return Config{MaxAttempts: 1}
}

// Delay returns the backoff delay for the given zero-indexed attempt.
func (c Config) Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	delay := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt))
	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}

	if c.Jitter > 0 {
		delta := delay * c.Jitter
		delay = delay - delta + rand.Float64()*2*delta
	}

	return time.Duration(delay)
}
