package app

import (
	"time"

	"github.com/zuozikang/bytedup"
	"github.com/zuozikang/bytedup/alloc"
	re "github.com/zuozikang/bytedup/retry"
)

// ProvideDuplicator wire
func ProvideDuplicator(cfg *Config) *bytedup.Duplicator {
	return bytedup.NewDuplicator(bytedup.DuplicatorOptions{
		AllocType: alloc.AllocType(cfg.Allocator.Type),
		MaxBytes:  cfg.Allocator.MaxBytes,
	})
}

// ProvideRetryConfig wire
func ProvideRetryConfig(cfg *Config) *re.RetryConfig {
	return re.NewRetryConfig(
		re.WithMaxAttempts(cfg.Retry.MaxAttempts),
		re.WithDelay(time.Duration(cfg.Retry.DelayMs)*time.Millisecond),
	)
}
