package main

import (
	"fmt"
	"strings"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	for _, s := range deps.Sites {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", s.Name, s.URL)
		fmt.Fprintf(deps.Stdout, "    root: %s\n", s.RootURL)
		if len(s.PriorityKeywords) > 0 {
			fmt.Fprintf(deps.Stdout, "    priority: %s\n", strings.Join(s.PriorityKeywords, ", "))
		}
		if len(s.Exclude) > 0 {
			fmt.Fprintf(deps.Stdout, "    exclude: %s\n", strings.Join(s.Exclude, ", "))
		}
		if s.Format != "" {
			fmt.Fprintf(deps.Stdout, "    format: %s\n", s.Format)
		}
	}
	return nil
}
