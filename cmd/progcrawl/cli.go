package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds shared services and configuration for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl  CrawlCmd  `cmd:"" help:"Run a crawl session"`
	List   ListCmd   `cmd:"" help:"List stored results"`
	Report ReportCmd `cmd:"" help:"Generate a markdown report from stored results"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Seeds     []string `arg:"" optional:"" help:"Seed URLs (defaults to the built-in seed list)"`
	SeedsFile string   `help:"File with one seed URL per line"`

	Out      string        `short:"o" default:"StateAutismEmploymentPrograms" help:"Output directory"`
	MaxPages int           `default:"75" help:"Page budget"`
	MaxDepth int           `default:"3" help:"Link-following depth"`
	Delay    time.Duration `default:"2s" help:"Minimum delay between requests"`
	Retries  int           `default:"3" help:"Retry ceiling for transient fetch failures"`
	Timeout  time.Duration `default:"15s" help:"Per-request timeout"`
	Sitemaps bool          `help:"Expand seeds from each origin's sitemap.xml"`

	DB         string `help:"SQLite database path for persisting results"`
	ReportFile string `name:"report" help:"Write a markdown report to this file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	DB     string `default:"progcrawl.db" help:"SQLite database path"`
	Region string `help:"Filter by region"`
	Limit  int    `default:"50" help:"Maximum rows to show"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	DB  string `default:"progcrawl.db" help:"SQLite database path"`
	Out string `short:"o" help:"Output file (stdout if unset)"`
}
