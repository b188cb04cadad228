package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/progcrawl"
	"golang.org/x/time/rate"
)

var _ progcrawl.RateLimiter = (*Limiter)(nil)

// Limiter enforces a fixed minimum delay between requests using a token
// bucket. The limit is global across all target hosts: the crawl is a single
// sequential worker and the delay bounds its request rate collectively, not
// per domain.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a Limiter that allows one request per delay interval
// with no bursting.
func NewLimiter(delay time.Duration) *Limiter {
	return &Limiter{
		l: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.l.Wait(ctx)
}
