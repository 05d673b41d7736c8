package retry

import "time"

// RetryConfig defines the configuration for retrying duplications.
type RetryConfig struct {
	MaxAttempts uint             // 最大尝试次数
	Delay       time.Duration    // 重试间隔
	RetryIfFn   func(error) bool // 为nil时由调用方决定哪些错误可重试
}

// NewRetryConfig creates a new RetryConfig with the provided options.
func NewRetryConfig(opts ...Option) *RetryConfig {
	r := *DefaultConfig

	for _, opt := range opts {
		opt(&r)
	}

	return &r
}

// DefaultConfig is the default configuration for retrying duplications.
var DefaultConfig = &RetryConfig{
	MaxAttempts: 3,
	Delay:       100 * time.Millisecond,
	RetryIfFn:   nil,
}

type Option func(*RetryConfig)

func WithMaxAttempts(maxAttempts uint) Option {
	return func(c *RetryConfig) {
		c.MaxAttempts = maxAttempts
	}
}

func WithDelay(delay time.Duration) Option {
	return func(c *RetryConfig) {
		c.Delay = delay
	}
}

func WithRetryIf(fn func(error) bool) Option {
	return func(c *RetryConfig) {
		c.RetryIfFn = fn
	}
}
