package mock

import (
	"context"

	"github.com/fwojciec/progcrawl"
)

var _ progcrawl.RobotsGate = (*RobotsGate)(nil)

// RobotsGate is a mock implementation of progcrawl.RobotsGate.
type RobotsGate struct {
	AllowedFn func(ctx context.Context, url string) (bool, error)
}

func (g *RobotsGate) Allowed(ctx context.Context, url string) (bool, error) {
	return g.AllowedFn(ctx, url)
}

var _ progcrawl.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of progcrawl.RateLimiter.
type RateLimiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
