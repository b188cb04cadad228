package mock

import (
	"context"

	"github.com/fwojciec/progcrawl"
)

var _ progcrawl.ResultSink = (*ResultSink)(nil)

// ResultSink is a mock implementation of progcrawl.ResultSink.
type ResultSink struct {
	WriteFn func(ctx context.Context, result *progcrawl.CrawlResult) error
}

func (s *ResultSink) Write(ctx context.Context, result *progcrawl.CrawlResult) error {
	return s.WriteFn(ctx, result)
}

var _ progcrawl.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of progcrawl.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, results []*progcrawl.CrawlResult) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, results []*progcrawl.CrawlResult) error {
	return w.WriteReportFn(ctx, results)
}
