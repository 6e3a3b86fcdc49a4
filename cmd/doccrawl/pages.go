package main

import (
	"fmt"

	"github.com/fwojciec/doccrawl"
	"github.com/fwojciec/doccrawl/crawl"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.FindRecords(deps.Ctx, doccrawl.RecordFilter{
		Site:  &c.Site,
		Limit: c.Limit,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccrawl.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no pages indexed for %q. Run 'doccrawl crawl %s' first.\n", c.Site, c.Site)
		return doccrawl.Errorf(doccrawl.ENOTFOUND, "no pages indexed for %q", c.Site)
	}

	fmt.Fprintf(deps.Stdout, "Pages for %s (%d):\n\n", c.Site, len(records))
	for i, r := range records {
		title := r.Title
		if title == "" {
			title = r.URL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s  %s.txt  %s\n", i+1, title, r.URL, r.Key, crawl.FormatBytes(r.Bytes))
	}
	return nil
}
