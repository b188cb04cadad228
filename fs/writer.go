// Package fs provides file-based persistence for crawl results: a CSV
// index, one text artifact per record, and a per-region summary.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/progcrawl"
)

// csvHeader is the stable column order of the index file.
var csvHeader = []string{
	"URL", "Title", "Region", "Organization", "ProgramName",
	"Services", "Eligibility", "ContactInfo", "FundingSource", "Filename",
}

// Ensure Writer implements progcrawl.ResultSink at compile time.
var _ progcrawl.ResultSink = (*Writer)(nil)

// Writer persists crawl results under a base directory:
//
//	<base>/index.csv          one row per record, csvHeader column order
//	<base>/programs/record_<n>.txt   per-record artifact, 1-indexed in emission order
//	<base>/summary.txt        per-region grouping, written by Close
type Writer struct {
	baseDir string

	file    *os.File
	csv     *csv.Writer
	count   int
	results []*progcrawl.CrawlResult
}

// NewWriter creates a Writer rooted at baseDir. Directories and files are
// created lazily on the first Write.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write persists a single result: one text artifact plus one index row.
func (w *Writer) Write(ctx context.Context, result *progcrawl.CrawlResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	if w.csv == nil {
		if err := w.open(); err != nil {
			return err
		}
	}

	w.count++
	filename := fmt.Sprintf("record_%d.txt", w.count)

	if err := os.WriteFile(filepath.Join(w.baseDir, "programs", filename), []byte(formatRecord(result)), 0644); err != nil {
		return err
	}

	row := []string{
		result.URL, result.Title, result.Region, result.Domain, result.ProgramName,
		strings.Join(result.Services, ", "), result.Eligibility, result.ContactInfo,
		result.FundingSource, filename,
	}
	if err := w.csv.Write(row); err != nil {
		return err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}

	w.results = append(w.results, result)
	return nil
}

// Results returns the records written so far, in emission order.
func (w *Writer) Results() []*progcrawl.CrawlResult {
	return w.results
}

// Close flushes the index and writes the per-region summary.
func (w *Writer) Close() error {
	if w.csv == nil {
		return nil
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	if err := w.file.Close(); err != nil {
		return err
	}
	return w.writeSummary()
}

// open creates the output directories and the CSV index with its header.
func (w *Writer) open() error {
	if err := os.MkdirAll(filepath.Join(w.baseDir, "programs"), 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(w.baseDir, "index.csv"))
	if err != nil {
		return err
	}
	w.file = f
	w.csv = csv.NewWriter(f)
	return w.csv.Write(csvHeader)
}

// formatRecord renders the per-record text artifact: a field header block
// followed by the page's raw text.
func formatRecord(r *progcrawl.CrawlResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "REGION: %s\n", r.Region)
	fmt.Fprintf(&b, "PROGRAM: %s\n", r.ProgramName)
	fmt.Fprintf(&b, "URL: %s\n", r.URL)
	fmt.Fprintf(&b, "ORGANIZATION: %s\n", r.Domain)
	fmt.Fprintf(&b, "SERVICES: %s\n", strings.Join(r.Services, ", "))
	fmt.Fprintf(&b, "ELIGIBILITY: %s\n", r.Eligibility)
	fmt.Fprintf(&b, "CONTACT: %s\n", r.ContactInfo)
	fmt.Fprintf(&b, "FUNDING: %s\n", r.FundingSource)
	b.WriteString(strings.Repeat("-", 70) + "\n")
	b.WriteString(r.RawText)
	return b.String()
}

// writeSummary groups records by region, most programs first, and writes a
// plain-text overview.
func (w *Writer) writeSummary() error {
	byRegion := make(map[string][]*progcrawl.CrawlResult)
	for _, r := range w.results {
		byRegion[r.Region] = append(byRegion[r.Region], r)
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool {
		a, b := byRegion[regions[i]], byRegion[regions[j]]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return regions[i] < regions[j]
	})

	var b strings.Builder
	b.WriteString("STATE AUTISM EMPLOYMENT PROGRAMS SUMMARY\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Total Programs Found: %d\n", len(w.results))
	fmt.Fprintf(&b, "Regions Represented: %d\n", len(byRegion))

	for _, region := range regions {
		programs := byRegion[region]
		fmt.Fprintf(&b, "\n%s: %d programs\n", strings.ToUpper(region), len(programs))
		b.WriteString(strings.Repeat("-", 30) + "\n")

		for _, p := range programs {
			fmt.Fprintf(&b, "- %s\n", p.ProgramName)
			if len(p.Services) > 0 {
				fmt.Fprintf(&b, "  Services: %s\n", strings.Join(p.Services, ", "))
			}
			if p.ContactInfo != "" {
				fmt.Fprintf(&b, "  Contact: %s\n", p.ContactInfo)
			}
			fmt.Fprintf(&b, "  URL: %s\n\n", p.URL)
		}
	}

	return os.WriteFile(filepath.Join(w.baseDir, "summary.txt"), []byte(b.String()), 0644)
}
