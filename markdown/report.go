// Package markdown renders a narrative report of crawl results using the
// nao1215/markdown library.
package markdown

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/progcrawl"
	"github.com/nao1215/markdown"
)

// topListLimit bounds the "top regions" and "most common services" lists in
// the executive summary.
const topListLimit = 5

// Ensure ReportWriter implements progcrawl.ReportWriter at compile time.
var _ progcrawl.ReportWriter = (*ReportWriter)(nil)

// ReportWriter renders a region-grouped program report in GitHub Flavored
// Markdown.
type ReportWriter struct {
	output io.Writer
}

// NewReportWriter creates a ReportWriter that writes to output.
func NewReportWriter(output io.Writer) *ReportWriter {
	return &ReportWriter{output: output}
}

// WriteReport renders the full report: an executive summary followed by
// per-region program sections.
func (w *ReportWriter) WriteReport(ctx context.Context, results []*progcrawl.CrawlResult) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("State Autism Employment Programs Report")
	md.PlainText("")
	md.PlainTextf(
		"This report catalogs %d programs designed to assist individuals with "+
			"Autism Spectrum Disorder (ASD) in finding and maintaining employment, "+
			"organized by state for easy reference.",
		len(results),
	)
	md.PlainText("")

	byRegion := groupByRegion(results)

	w.writeSummary(md, results, byRegion)
	w.writePrograms(md, byRegion)

	return md.Build()
}

// writeSummary writes the executive summary section.
func (w *ReportWriter) writeSummary(md *markdown.Markdown, results []*progcrawl.CrawlResult, byRegion map[string][]*progcrawl.CrawlResult) {
	md.H2("Executive Summary")
	md.PlainText("")

	rows := [][]string{
		{"Programs identified", strconv.Itoa(len(results))},
		{"Regions with programs", strconv.Itoa(len(byRegion))},
	}
	if top := topRegions(byRegion); top != "" {
		rows = append(rows, []string{"Most programs", top})
	}
	if top := topServices(results); top != "" {
		rows = append(rows, []string{"Most common services", top})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePrograms writes one section per region, alphabetically.
func (w *ReportWriter) writePrograms(md *markdown.Markdown, byRegion map[string][]*progcrawl.CrawlResult) {
	md.H2("Programs by Region")
	md.PlainText("")

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		programs := byRegion[region]
		md.H3(fmt.Sprintf("%s (%d programs)", region, len(programs)))
		md.PlainText("")

		for i, p := range programs {
			md.H4(fmt.Sprintf("%d. %s", i+1, p.ProgramName))
			md.PlainText("")

			if len(p.Services) > 0 {
				md.PlainTextf("Services: %s", strings.Join(p.Services, ", "))
			}
			if p.Eligibility != "" {
				md.PlainTextf("Eligibility: %s", p.Eligibility)
			}
			if p.ContactInfo != "" {
				md.PlainTextf("Contact: %s", p.ContactInfo)
			}
			if p.FundingSource != "" {
				md.PlainTextf("Funding: %s", p.FundingSource)
			}
			md.PlainTextf("Website: %s", p.URL)
			md.PlainText("")
		}
	}
}

// groupByRegion groups results by region, preserving emission order within
// each group.
func groupByRegion(results []*progcrawl.CrawlResult) map[string][]*progcrawl.CrawlResult {
	byRegion := make(map[string][]*progcrawl.CrawlResult)
	for _, r := range results {
		byRegion[r.Region] = append(byRegion[r.Region], r)
	}
	return byRegion
}

// topRegions formats the regions with the most programs, e.g.
// "California (4), Texas (2)".
func topRegions(byRegion map[string][]*progcrawl.CrawlResult) string {
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

	if len(regions) > topListLimit {
		regions = regions[:topListLimit]
	}
	parts := make([]string, 0, len(regions))
	for _, region := range regions {
		parts = append(parts, fmt.Sprintf("%s (%d)", region, len(byRegion[region])))
	}
	return strings.Join(parts, ", ")
}

// topServices formats the most frequently offered services across all
// programs.
func topServices(results []*progcrawl.CrawlResult) string {
	counts := make(map[string]int)
	var order []string
	for _, r := range results {
		for _, s := range r.Services {
			if counts[s] == 0 {
				order = append(order, s)
			}
			counts[s]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topListLimit {
		order = order[:topListLimit]
	}
	return strings.Join(order, ", ")
}
