// Package mock provides hand-written mocks for progcrawl interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/progcrawl"
)

var _ progcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of progcrawl.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*progcrawl.PageContent, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*progcrawl.PageContent, error) {
	return f.FetchFn(ctx, url)
}
