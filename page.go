package progcrawl

import "context"

// PageContent is the raw payload of a fetched page. It is ephemeral:
// produced by a Fetcher, consumed by link and text extraction, then
// discarded.
type PageContent struct {
	HTML        string
	ContentType string
}

// PageText is the visible text of a page after boilerplate removal.
type PageText struct {
	Title   string // document title, empty if absent
	Heading string // first h1 text, empty if absent
	Text    string // newline-separated visible text
}

// Fetcher retrieves page content over HTTP.
type Fetcher interface {
	// Fetch retrieves the content at url.
	// Returns an EUNAVAILABLE error for transient failures (429, 5xx,
	// timeouts), EUNSUPPORTED for non-document content types, and
	// EINTERNAL for other failures.
	Fetch(ctx context.Context, url string) (*PageContent, error)
}

// RobotsGate answers whether a URL may be fetched under the target origin's
// robots.txt. Implementations cache per origin and fail open: an unreachable
// or malformed robots file never blocks the crawl.
type RobotsGate interface {
	// Allowed reports whether a wildcard user agent may fetch url.
	// Returns an error only if url itself cannot be parsed.
	Allowed(ctx context.Context, url string) (bool, error)
}

// LinkExtractor parses markup into candidate URLs for the frontier.
type LinkExtractor interface {
	// ExtractLinks returns the deduplicated absolute http/https URLs
	// referenced by anchors in html, resolved against baseURL.
	// Elements that fail to parse are skipped, never fatal.
	ExtractLinks(html string, baseURL string) ([]string, error)
}

// TextExtractor derives visible page text from markup.
type TextExtractor interface {
	// ExtractText strips script, style, nav, footer and header subtrees
	// and returns the remaining visible text with title and first heading.
	ExtractText(html string) (*PageText, error)
}

// SitemapService discovers additional seed URLs from the sitemaps of seed
// origins.
type SitemapService interface {
	// Discover fetches /sitemap.xml for each distinct origin in seeds and
	// returns the URLs it lists. Origins without a usable sitemap are
	// skipped silently.
	Discover(ctx context.Context, seeds []string) ([]string, error)
}
