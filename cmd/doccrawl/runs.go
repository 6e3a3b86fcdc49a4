package main

import (
	"fmt"

	"github.com/fwojciec/doccrawl"
	"github.com/fwojciec/doccrawl/crawl"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, c.Site, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccrawl.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawl runs recorded. Use 'doccrawl crawl' to start one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %-16s fetched=%d saved=%d failed=%d  %s  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Site, r.Fetched, r.Admitted, r.Failed,
			crawl.FormatBytes(r.Bytes),
			crawl.FormatDuration(r.Elapsed),
		)
	}
	return nil
}
