package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/progcrawl"
)

// Ensure LoggingGate implements progcrawl.RobotsGate.
var _ progcrawl.RobotsGate = (*LoggingGate)(nil)

// LoggingGate wraps a RobotsGate and records denials. A denial is not an
// error, so it is logged at Info.
type LoggingGate struct {
	next   progcrawl.RobotsGate
	logger *slog.Logger
}

// NewLoggingGate creates a new LoggingGate.
func NewLoggingGate(next progcrawl.RobotsGate, logger *slog.Logger) *LoggingGate {
	return &LoggingGate{next: next, logger: logger}
}

// Allowed delegates to the wrapped gate and logs denials.
func (g *LoggingGate) Allowed(ctx context.Context, url string) (bool, error) {
	allowed, err := g.next.Allowed(ctx, url)
	if err != nil {
		return allowed, err
	}
	if !allowed {
		g.logger.Info("disallowed by robots.txt", "url", url)
	}
	return allowed, nil
}
