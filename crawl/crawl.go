// Package crawl provides the crawl engine: the frontier, the rate limiter,
// fetch retry, and the sequential loop that sequences politeness checks,
// fetching, classification and field extraction for each task.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/progcrawl"
)

// Default crawl bounds, matching the defaults the tool ships with.
const (
	DefaultMaxPages = 75
	DefaultMaxDepth = 3
)

// Crawler runs a single crawl session to completion or budget exhaustion.
// All fields must be set before calling Run; the configuration is not
// mutated afterwards.
type Crawler struct {
	Gate       progcrawl.RobotsGate
	Fetcher    progcrawl.Fetcher
	Links      progcrawl.LinkExtractor
	Text       progcrawl.TextExtractor
	Classifier progcrawl.Classifier
	Fields     progcrawl.FieldExtractor
	Sink       progcrawl.ResultSink
	Limiter    progcrawl.RateLimiter
	Logger     *slog.Logger

	MaxPages    int // page budget, DefaultMaxPages if <= 0
	MaxDepth    int // link-following depth, DefaultMaxDepth if <= 0
	RetryDelays []time.Duration
}

// Result holds the outcome of a crawl session.
type Result struct {
	Emitted int // records handed to the sink
	Fetched int // pages retrieved successfully
	Denied  int // robots.txt denials
	Skipped int // non-document content types
	Failed  int // unavailable pages, parse failures, sink errors
}

// Run executes the crawl session over the given seed URLs.
//
// Each task moves through a fixed sequence: dedup check, depth check,
// politeness check, rate-limited fetch with retry, parse, relevance check,
// field extraction, emission, link enqueue. No per-task failure escapes the
// loop; every failure degrades to discarding the task. The session ends when
// the queue is empty or the page budget is reached.
func (c *Crawler) Run(ctx context.Context, seeds []string) (*Result, error) {
	if len(seeds) == 0 {
		return nil, progcrawl.Errorf(progcrawl.EINVALID, "seed list required")
	}

	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	frontier := NewFrontier(maxPages)
	for _, seed := range seeds {
		frontier.Push(progcrawl.CrawlTask{URL: seed, Depth: 0})
	}

	logger.Info("starting crawl", "seeds", len(seeds), "maxPages", maxPages, "maxDepth", maxDepth)

	var result Result
	for frontier.VisitedCount() < maxPages {
		task, ok := frontier.Pop()
		if !ok {
			break
		}
		if ctx.Err() != nil {
			break
		}

		// Dedup and depth bounds. Visit marks the URL before any of its
		// outbound links can be enqueued.
		if task.Depth > maxDepth || !frontier.Visit(task.URL) {
			continue
		}

		if c.processTask(ctx, task, frontier, maxDepth, delays, logger, &result) {
			break
		}
	}

	logger.Info("crawl finished",
		"emitted", result.Emitted,
		"fetched", result.Fetched,
		"visited", frontier.VisitedCount(),
		"denied", result.Denied,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	return &result, nil
}

// processTask handles a single dequeued task. The return value is true only
// when the session should stop (context canceled during a wait).
func (c *Crawler) processTask(ctx context.Context, task progcrawl.CrawlTask, frontier *Frontier, maxDepth int, delays []time.Duration, logger *slog.Logger, result *Result) (stop bool) {
	allowed, err := c.Gate.Allowed(ctx, task.URL)
	if err != nil {
		result.Failed++
		return false
	}
	if !allowed {
		logger.Info("robots.txt disallows crawling", "url", task.URL)
		result.Denied++
		return false
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		return true
	}

	content, err := FetchWithRetryDelays(ctx, task.URL, c.Fetcher.Fetch, logger, delays)
	if err != nil {
		switch progcrawl.ErrorCode(err) {
		case progcrawl.EUNSUPPORTED:
			logger.Info("skipping non-document content", "url", task.URL)
			result.Skipped++
		default:
			logger.Warn("failed to fetch", "url", task.URL, "error", progcrawl.ErrorMessage(err))
			result.Failed++
		}
		return false
	}
	result.Fetched++

	page, err := c.Text.ExtractText(content.HTML)
	if err != nil {
		logger.Warn("failed to parse", "url", task.URL, "error", progcrawl.ErrorMessage(err))
		result.Failed++
		return false
	}

	if !c.Classifier.Relevant(page.Text, task.URL) {
		return false
	}

	fields := c.Fields.ExtractFields(page, task.URL)
	record := &progcrawl.CrawlResult{
		URL:           task.URL,
		Title:         page.Title,
		Region:        fields.Region,
		Domain:        domainOf(task.URL),
		RawText:       page.Text,
		Depth:         task.Depth,
		ProgramName:   fields.ProgramName,
		Services:      fields.Services,
		Eligibility:   fields.Eligibility,
		ContactInfo:   fields.ContactInfo,
		FundingSource: fields.FundingSource,
		CrawledAt:     time.Now().UTC(),
	}

	if err := c.Sink.Write(ctx, record); err != nil {
		logger.Warn("failed to write result", "url", task.URL, "error", progcrawl.ErrorMessage(err))
		result.Failed++
		return false
	}

	result.Emitted++
	logger.Info("found program",
		"region", record.Region,
		"title", truncate(record.Title, 60),
		"emitted", result.Emitted,
	)

	// Only emitted pages contribute new tasks; discarded pages are leaves.
	if task.Depth < maxDepth {
		if links, err := c.Links.ExtractLinks(content.HTML, task.URL); err == nil {
			for _, link := range links {
				frontier.Push(progcrawl.CrawlTask{URL: link, Depth: task.Depth + 1})
			}
		}
	}
	return false
}

// domainOf returns the host of a URL with any leading "www." removed.
// Returns an empty string for unparseable URLs.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// truncate shortens s for display.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
