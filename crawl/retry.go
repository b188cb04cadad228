package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/progcrawl"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (*progcrawl.PageContent, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// BackoffDelays returns n exponentially doubling delays starting at 1s.
func BackoffDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	d := 1 * time.Second
	for i := 0; i < n; i++ {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// FetchWithRetry attempts a fetch with exponential backoff on transient
// failures. It retries up to 3 times (4 total attempts) with delays of
// 1s, 2s, 4s. The logger, if provided, records each retry attempt.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger) (*progcrawl.PageContent, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is like FetchWithRetry but allows configurable delays.
// Only EUNAVAILABLE errors (429, 5xx, timeouts) are retried; any other
// failure is returned immediately.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (*progcrawl.PageContent, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		content, err := fetch(ctx, url)
		if err == nil {
			return content, nil
		}
		lastErr = err

		if progcrawl.ErrorCode(err) != progcrawl.EUNAVAILABLE {
			return nil, err
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Warn("retrying fetch",
				"url", url,
				"attempt", attempt+2,
				"error", progcrawl.ErrorMessage(err),
			)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
