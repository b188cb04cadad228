package mock

import (
	"context"

	"github.com/fwojciec/progcrawl"
)

var _ progcrawl.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of progcrawl.SitemapService.
type SitemapService struct {
	DiscoverFn func(ctx context.Context, seeds []string) ([]string, error)
}

func (s *SitemapService) Discover(ctx context.Context, seeds []string) ([]string, error) {
	return s.DiscoverFn(ctx, seeds)
}
