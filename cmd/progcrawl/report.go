package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/progcrawl"
	"github.com/fwojciec/progcrawl/markdown"
	"github.com/fwojciec/progcrawl/sqlite"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	results, err := sqlite.NewResultService(db).FindResults(deps.Ctx, progcrawl.ResultFilter{})
	if err != nil {
		return err
	}

	var out io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return markdown.NewReportWriter(out).WriteReport(deps.Ctx, results)
}
