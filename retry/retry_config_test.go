package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRetryConfig(t *testing.T) {
	cfg := NewRetryConfig()
	assert.Equal(t, uint(3), cfg.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.Delay)
	assert.Nil(t, cfg.RetryIfFn)
}

func TestRetryConfigOptions(t *testing.T) {
	sentinel := errors.New("retryable")
	cfg := NewRetryConfig(
		WithMaxAttempts(5),
		WithDelay(time.Second),
		WithRetryIf(func(err error) bool {
			return errors.Is(err, sentinel)
		}),
	)
	assert.Equal(t, uint(5), cfg.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Delay)
	assert.True(t, cfg.RetryIfFn(sentinel))
	assert.False(t, cfg.RetryIfFn(errors.New("other")))
}

func TestRetryConfigDoesNotMutateDefault(t *testing.T) {
	_ = NewRetryConfig(WithMaxAttempts(99))
	assert.Equal(t, uint(3), DefaultConfig.MaxAttempts)
}
