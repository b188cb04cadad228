package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/fwojciec/progcrawl"
	"golang.org/x/sync/errgroup"
)

// Ensure SitemapService implements progcrawl.SitemapService.
var _ progcrawl.SitemapService = (*SitemapService)(nil)

// sitemapConcurrency bounds concurrent sitemap fetches across origins.
// Discovery happens once, before the crawl, so it is not subject to the
// crawl's rate limiter.
const sitemapConcurrency = 4

// SitemapService expands a seed list with URLs from each seed origin's
// sitemap.xml. Sitemaps are optional; origins without a usable one are
// skipped silently.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// Discover fetches /sitemap.xml for each distinct origin among seeds and
// returns the deduplicated URLs they list. Sitemap indexes are followed one
// level deep.
func (s *SitemapService) Discover(ctx context.Context, seeds []string) ([]string, error) {
	origins := distinctOrigins(seeds)

	var mu sync.Mutex
	var discovered []string
	seen := make(map[string]bool)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sitemapConcurrency)

	for _, origin := range origins {
		g.Go(func() error {
			urls := s.sitemapURLs(gctx, origin+"/sitemap.xml", 1)
			mu.Lock()
			for _, u := range urls {
				if !seen[u] {
					seen[u] = true
					discovered = append(discovered, u)
				}
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return discovered, nil
}

// sitemapURLs fetches and parses one sitemap document. A <sitemapindex> is
// followed recursively up to depth levels; a <urlset> yields its locations.
// Any failure yields an empty result.
func (s *SitemapService) sitemapURLs(ctx context.Context, sitemapURL string, depth int) []string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}

	if root.Tag == "sitemapindex" {
		if depth <= 0 {
			return nil
		}
		var urls []string
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			child := strings.TrimSpace(loc.Text())
			if child == "" {
				continue
			}
			urls = append(urls, s.sitemapURLs(ctx, child, depth-1)...)
		}
		return urls
	}

	var urls []string
	for _, el := range root.SelectElements("url") {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// distinctOrigins returns the unique scheme://host origins of the given
// URLs, in first-seen order. Unparseable URLs are skipped.
func distinctOrigins(urls []string) []string {
	seen := make(map[string]bool)
	var origins []string
	for _, raw := range urls {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			continue
		}
		origin := u.Scheme + "://" + u.Host
		if !seen[origin] {
			seen[origin] = true
			origins = append(origins, origin)
		}
	}
	return origins
}
