package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/doccrawl"
)

// Run executes the crawl command. Sites are crawled in order; a failing
// site is reported and does not stop the others.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	sites, err := selectSites(deps.Sites, c.Names)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccrawl.ErrorMessage(err))
		return err
	}

	if c.Fresh && deps.Records != nil {
		for _, site := range sites {
			if err := deps.Records.DeleteRecordsBySite(deps.Ctx, site.Name); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", doccrawl.ErrorMessage(err))
				return err
			}
		}
	}

	printer := NewProgressPrinter(deps.Stdout)
	printer.ShowTokens = deps.Crawler.TokenCounter != nil
	deps.Crawler.Progress = printer.Handle

	fmt.Fprintf(deps.Stdout, "🌐 Starting crawl of %d website(s), saving to %s\n\n", len(sites), c.Out)

	start := time.Now()
	results, err := deps.Crawler.CrawlAll(deps.Ctx, sites)
	printer.Summary(results, time.Since(start))

	return err
}

// selectSites returns the sites named in names, in the order given, or all
// sites when names is empty.
func selectSites(sites []*doccrawl.Site, names []string) ([]*doccrawl.Site, error) {
	if len(names) == 0 {
		return sites, nil
	}

	byName := make(map[string]*doccrawl.Site, len(sites))
	for _, s := range sites {
		byName[s.Name] = s
	}

	selected := make([]*doccrawl.Site, 0, len(names))
	for _, name := range names {
		site, ok := byName[name]
		if !ok {
			return nil, doccrawl.Errorf(doccrawl.ENOTFOUND, "site %q not configured. Use 'doccrawl sites' to see configured sites.", name)
		}
		selected = append(selected, site)
	}
	return selected, nil
}
