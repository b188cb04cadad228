package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/progcrawl"
	"github.com/temoto/robotstxt"
)

// Ensure RobotsGate implements progcrawl.RobotsGate at compile time.
var _ progcrawl.RobotsGate = (*RobotsGate)(nil)

// RobotsGate checks robots.txt compliance for a wildcard user agent.
//
// Rules are fetched at most once per origin per session and cached for the
// session's lifetime. The gate fails open: if robots.txt cannot be fetched
// or parsed, crawling proceeds.
type RobotsGate struct {
	client *http.Client
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]robotsDecision // keyed by scheme://host
}

// robotsDecision is the cached outcome of a robots.txt fetch for an origin.
// A nil group means everything is allowed.
type robotsDecision struct {
	group     *robotstxt.Group
	fetchedAt time.Time
}

// NewRobotsGate creates a RobotsGate. If client is nil a 10-second-timeout
// client is used.
func NewRobotsGate(client *http.Client, logger *slog.Logger) *RobotsGate {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RobotsGate{
		client: client,
		logger: logger,
		cache:  make(map[string]robotsDecision),
	}
}

// Allowed reports whether a wildcard user agent may fetch rawURL.
// Returns an error only if rawURL itself cannot be parsed.
func (g *RobotsGate) Allowed(ctx context.Context, rawURL string) (bool, error) {
	target, err := url.Parse(rawURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return false, progcrawl.Errorf(progcrawl.EINVALID, "invalid URL %q", rawURL)
	}

	origin := target.Scheme + "://" + target.Host

	g.mu.Lock()
	decision, ok := g.cache[origin]
	g.mu.Unlock()

	if !ok {
		decision = robotsDecision{
			group:     g.fetchGroup(ctx, origin),
			fetchedAt: time.Now(),
		}
		g.mu.Lock()
		g.cache[origin] = decision
		g.mu.Unlock()
	}

	if decision.group == nil {
		return true, nil
	}
	path := target.Path
	if path == "" {
		path = "/"
	}
	if target.RawQuery != "" {
		path += "?" + target.RawQuery
	}
	return decision.group.Test(path), nil
}

// fetchGroup retrieves and parses robots.txt for an origin and returns the
// wildcard agent group. Any failure returns nil, which means fail-open.
func (g *RobotsGate) fetchGroup(ctx context.Context, origin string) *robotstxt.Group {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return nil
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("robots.txt unreachable, failing open", "origin", origin, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Missing or inaccessible robots.txt allows everything.
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.Warn("robots.txt read failed, failing open", "origin", origin, "error", err)
		return nil
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		g.logger.Warn("robots.txt malformed, failing open", "origin", origin, "error", err)
		return nil
	}

	return data.FindGroup("*")
}
