package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/progcrawl"
	"github.com/fwojciec/progcrawl/sqlite"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", c.DB, err)
	}
	defer db.Close()

	filter := progcrawl.ResultFilter{Limit: c.Limit}
	if c.Region != "" {
		filter.Region = &c.Region
	}

	results, err := sqlite.NewResultService(db).FindResults(deps.Ctx, filter)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREGION\tPROGRAM\tURL")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Region, r.ProgramName, r.URL)
	}
	return w.Flush()
}
