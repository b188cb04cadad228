package progcrawl

import (
	"context"
	"time"
)

// CrawlResult is the engine's unit of output: one structured record per
// admitted page. Records are immutable after creation; ownership transfers
// to the result sink.
type CrawlResult struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Region        string    `json:"region"` // state name or abbreviation, "Unknown" if undetermined
	Domain        string    `json:"domain"` // host with leading "www." removed
	RawText       string    `json:"rawText"`
	Depth         int       `json:"depth"`
	ProgramName   string    `json:"programName"`
	Services      []string  `json:"services"`
	Eligibility   string    `json:"eligibility"`
	ContactInfo   string    `json:"contactInfo"`
	FundingSource string    `json:"fundingSource"`
	ContentHash   string    `json:"contentHash"`
	CrawledAt     time.Time `json:"crawledAt"`
}

// Validate returns an error if the result contains invalid fields.
func (r *CrawlResult) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	if r.Region == "" {
		return Errorf(EINVALID, "result region required")
	}
	return nil
}

// ResultSink consumes crawl results in emission order. The engine guarantees
// record completeness and FIFO emission order; everything downstream of that
// (index rows, per-page artifacts, summaries) is the sink's concern.
type ResultSink interface {
	// Write persists a single result.
	Write(ctx context.Context, result *CrawlResult) error
}

// ReportWriter produces a formatted narrative report from a full result set.
// A no-op implementation is substituted at composition time when reporting
// is not wanted.
type ReportWriter interface {
	WriteReport(ctx context.Context, results []*CrawlResult) error
}

// NopReportWriter is a ReportWriter that does nothing.
type NopReportWriter struct{}

// WriteReport implements ReportWriter.
func (NopReportWriter) WriteReport(context.Context, []*CrawlResult) error { return nil }

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	ID     *string `json:"id"`
	Region *string `json:"region"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ResultService represents a service for managing stored crawl results.
type ResultService interface {
	// CreateResult persists a new result.
	CreateResult(ctx context.Context, result *CrawlResult) error

	// FindResultByID retrieves a result by ID.
	// Returns ENOTFOUND if the result does not exist.
	FindResultByID(ctx context.Context, id string) (*CrawlResult, error)

	// FindResults retrieves results matching the filter, newest first.
	FindResults(ctx context.Context, filter ResultFilter) ([]*CrawlResult, error)

	// DeleteResult permanently removes a result.
	// Returns ENOTFOUND if the result does not exist.
	DeleteResult(ctx context.Context, id string) error
}
