// Package slog provides logging decorators for progcrawl services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/progcrawl"
)

// Ensure LoggingFetcher implements progcrawl.Fetcher.
var _ progcrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request debug logging.
type LoggingFetcher struct {
	next   progcrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next progcrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*progcrawl.PageContent, error) {
	begin := time.Now()
	content, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Debug("fetch failed",
			"url", url,
			"code", progcrawl.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	f.logger.Debug("fetched",
		"url", url,
		"bytes", len(content.HTML),
		"contentType", content.ContentType,
		"duration", time.Since(begin),
	)
	return content, nil
}
