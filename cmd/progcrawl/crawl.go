package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/progcrawl"
	"github.com/fwojciec/progcrawl/crawl"
	"github.com/fwojciec/progcrawl/fs"
	"github.com/fwojciec/progcrawl/goquery"
	prohttp "github.com/fwojciec/progcrawl/http"
	"github.com/fwojciec/progcrawl/markdown"
	"github.com/fwojciec/progcrawl/rules"
	proslog "github.com/fwojciec/progcrawl/slog"
	"github.com/fwojciec/progcrawl/sqlite"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	seeds, err := c.seedList()
	if err != nil {
		return err
	}

	writer := fs.NewWriter(c.Out)
	sinks := []progcrawl.ResultSink{writer}

	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
		}
		defer db.Close()
		sinks = append(sinks, &serviceSink{service: sqlite.NewResultService(db)})
	}

	crawler := &crawl.Crawler{
		Gate:        proslog.NewLoggingGate(prohttp.NewRobotsGate(nil, deps.Logger), deps.Logger),
		Fetcher:     proslog.NewLoggingFetcher(prohttp.NewFetcher(prohttp.WithTimeout(c.Timeout)), deps.Logger),
		Links:       goquery.NewLinkExtractor(),
		Text:        goquery.NewTextExtractor(),
		Classifier:  rules.NewClassifier(),
		Fields:      rules.NewFieldExtractor(),
		Sink:        teeSink(sinks),
		Limiter:     crawl.NewLimiter(c.Delay),
		Logger:      deps.Logger,
		MaxPages:    c.MaxPages,
		MaxDepth:    c.MaxDepth,
		RetryDelays: crawl.BackoffDelays(c.Retries),
	}

	if c.Sitemaps {
		discovered, err := prohttp.NewSitemapService(nil).Discover(deps.Ctx, seeds)
		if err != nil {
			return err
		}
		deps.Logger.Info("sitemap discovery", "urls", len(discovered))
		seeds = append(seeds, discovered...)
	}

	result, err := crawler.Run(deps.Ctx, seeds)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", progcrawl.ErrorMessage(err))
		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}

	// The narrative report is a composition-time capability: a no-op
	// writer is used unless a report file was requested.
	var reporter progcrawl.ReportWriter = progcrawl.NopReportWriter{}
	if c.ReportFile != "" {
		f, err := os.Create(c.ReportFile)
		if err != nil {
			return err
		}
		defer f.Close()
		reporter = markdown.NewReportWriter(f)
	}
	if err := reporter.WriteReport(deps.Ctx, writer.Results()); err != nil {
		return err
	}

	if result.Emitted == 0 {
		fmt.Fprintln(deps.Stdout, "No programs found. Try expanding the seed list.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d programs (%d denied by robots.txt, %d skipped, %d failed)\n",
		result.Emitted, result.Denied, result.Skipped, result.Failed)
	fmt.Fprintf(deps.Stdout, "Results saved in %q\n", c.Out)
	return nil
}

// seedList resolves the seed URLs from arguments, a seeds file, or the
// built-in default list, in that priority order.
func (c *CrawlCmd) seedList() ([]string, error) {
	if len(c.Seeds) > 0 {
		return c.Seeds, nil
	}
	if c.SeedsFile != "" {
		return readSeedsFile(c.SeedsFile)
	}
	return DefaultSeeds, nil
}

// readSeedsFile reads one seed URL per line, skipping blanks and comments.
func readSeedsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var seeds []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seeds = append(seeds, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seeds, nil
}

// teeSink fans a result out to every sink in order.
type teeSink []progcrawl.ResultSink

func (t teeSink) Write(ctx context.Context, result *progcrawl.CrawlResult) error {
	for _, sink := range t {
		if err := sink.Write(ctx, result); err != nil {
			return err
		}
	}
	return nil
}

// serviceSink adapts a ResultService to the ResultSink interface.
type serviceSink struct {
	service progcrawl.ResultService
}

func (s *serviceSink) Write(ctx context.Context, result *progcrawl.CrawlResult) error {
	return s.service.CreateResult(ctx, result)
}
