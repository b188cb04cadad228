// Package http provides HTTP implementations of the progcrawl fetch and
// politeness interfaces: the page fetcher, the robots.txt gate, and sitemap
// seed discovery.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/progcrawl"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 15 * time.Second

// defaultUserAgent mimics a regular browser; several state government sites
// serve reduced pages to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements progcrawl.Fetcher at compile time.
var _ progcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content using plain HTTP requests. It does not
// execute JavaScript; dynamic rendering is out of scope for this crawler.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the content at url.
//
// Status codes 429 and 5xx map to EUNAVAILABLE so the caller can retry with
// backoff; other non-2xx statuses map to EINTERNAL. Responses whose
// content-type is not a markup document type map to EUNSUPPORTED and are
// never passed downstream.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*progcrawl.PageContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, progcrawl.Errorf(progcrawl.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		// A name that doesn't resolve won't resolve on the next attempt;
		// timeouts and connection failures are worth retrying.
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return nil, progcrawl.Errorf(progcrawl.EINTERNAL, "fetch %s: %v", url, err)
		}
		return nil, progcrawl.Errorf(progcrawl.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if retryable(resp.StatusCode) {
		return nil, progcrawl.Errorf(progcrawl.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, progcrawl.Errorf(progcrawl.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isMarkup(contentType) {
		return nil, progcrawl.Errorf(progcrawl.EUNSUPPORTED, "non-document content type %q for %s", contentType, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, progcrawl.Errorf(progcrawl.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return &progcrawl.PageContent{
		HTML:        string(body),
		ContentType: contentType,
	}, nil
}

// retryable reports whether a status code indicates a transient condition.
func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// isMarkup reports whether a content type is a markup document type.
func isMarkup(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml+xml")
}
