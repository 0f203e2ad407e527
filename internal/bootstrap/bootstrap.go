// Package bootstrap owns the startup connectivity loop: retry the
// database until it is ready, with a fixed interval between attempts.
package bootstrap

import (
	"context"
	"fmt"
	"time"
)

// sleep 等待下一次嘗試，測試可覆寫此變數。
var sleep = time.Sleep

// Config bounds the retry loop. MaxAttempts must be positive;
// RetryInterval of zero retries immediately.
type Config struct {
	MaxAttempts   int
	RetryInterval time.Duration

	// Report is called after each failed attempt. Optional.
	Report func(attempt int, err error)
}

// Run calls attempt up to cfg.MaxAttempts times, sleeping
// cfg.RetryInterval between failures (never after the last one).
// It returns nil on the first success, or the last error wrapped once
// the attempts are exhausted. Run never retries past a success and
// never panics the caller; the caller decides whether exhaustion is
// fatal or the service starts degraded.
func Run(ctx context.Context, cfg Config, attempt func(ctx context.Context) error) error {
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("bootstrap: max attempts must be positive, got %d", cfg.MaxAttempts)
	}

	var lastErr error
	for i := 1; i <= cfg.MaxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
		lastErr = attempt(ctx)
		if lastErr == nil {
			return nil
		}
		if cfg.Report != nil {
			cfg.Report(i, lastErr)
		}
		if i < cfg.MaxAttempts && cfg.RetryInterval > 0 {
			sleep(cfg.RetryInterval)
		}
	}
	return fmt.Errorf("bootstrap: database not ready after %d attempts: %w", cfg.MaxAttempts, lastErr)
}
