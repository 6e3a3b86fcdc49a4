package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/doccrawl"
	"github.com/fwojciec/doccrawl/crawl"
)

const (
	titleWidth = 50
	urlWidth   = 100
)

// ProgressPrinter writes one line per crawled page and a summary per site.
type ProgressPrinter struct {
	w io.Writer

	// ShowTokens adds approximate token counts to site summaries.
	ShowTokens bool

	sites int
}

// NewProgressPrinter returns a printer writing to w.
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{w: w}
}

// Handle prints a crawl progress event. It has the crawl.ProgressFunc
// signature.
func (p *ProgressPrinter) Handle(e crawl.ProgressEvent) {
	c := e.Counters
	switch e.Type {
	case crawl.ProgressStarted:
		if p.sites > 0 {
			fmt.Fprintf(p.w, "\n%s\n\n", strings.Repeat("=", 80))
		}
		p.sites++
		fmt.Fprintf(p.w, "🚀 Starting crawling for %s website...\n", e.Site.Name)
		fmt.Fprintf(p.w, "🎯 Starting crawl with %d filtered URLs\n", e.Queued)
	case crawl.ProgressAdmitted:
		fmt.Fprintf(p.w, "✅ [%d saved/%d total] Saved: %s... (%d chars)\n",
			c.Admitted, c.Fetched, crawl.TruncateTitle(e.Title, titleWidth), e.Chars)
		if e.Err != nil {
			fmt.Fprintf(p.w, "⚠️  [%d] Not written: %v\n", c.Fetched, e.Err)
		}
	case crawl.ProgressSkipped:
		fmt.Fprintf(p.w, "⏭️  [%d] Skipped: %s...\n", c.Fetched, crawl.TruncateTitle(label(e), titleWidth))
	case crawl.ProgressFailed:
		fmt.Fprintf(p.w, "❌ Error loading %s: %v\n", crawl.TruncateURL(e.URL, urlWidth), e.Err)
	case crawl.ProgressFinished:
		p.finished(e)
	}
}

func (p *ProgressPrinter) finished(e crawl.ProgressEvent) {
	c := e.Counters
	if e.Err != nil {
		fmt.Fprintf(p.w, "\n⛔ %s crawling stopped: %v\n", e.Site.Name, e.Err)
	} else {
		fmt.Fprintf(p.w, "\n✅ %s crawling completed!\n", e.Site.Name)
	}
	fmt.Fprintf(p.w, "📊 Total pages crawled: %d\n", c.Fetched)
	fmt.Fprintf(p.w, "📚 Pages saved: %d\n", c.Admitted)
	if c.Failed > 0 {
		fmt.Fprintf(p.w, "❌ Failed fetches: %d\n", c.Failed)
	}
	if p.ShowTokens {
		fmt.Fprintf(p.w, "💾 Content: %s, %s\n", crawl.FormatBytes(c.Bytes), crawl.FormatTokens(c.Tokens))
	} else {
		fmt.Fprintf(p.w, "💾 Content: %s\n", crawl.FormatBytes(c.Bytes))
	}
	fmt.Fprintf(p.w, "⏱️ Total crawling time: %s\n", crawl.FormatDuration(c.Elapsed))
	fmt.Fprintf(p.w, "📈 Average time per page: %.2f seconds\n", c.AveragePerPage().Seconds())
}

// Summary prints the end-of-run report across all sites.
func (p *ProgressPrinter) Summary(results []crawl.SiteResult, elapsed time.Duration) {
	var total doccrawl.Counters
	for _, r := range results {
		total.Fetched += r.Counters.Fetched
		total.Admitted += r.Counters.Admitted
	}

	fmt.Fprintf(p.w, "\n🏁 All websites crawling completed!\n")
	fmt.Fprintf(p.w, "📚 %d pages saved from %d sites (%d crawled)\n", total.Admitted, len(results), total.Fetched)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(p.w, "⚠️  %s: %s\n", r.Site.Name, doccrawl.ErrorMessage(r.Err))
		}
	}
	fmt.Fprintf(p.w, "⏱️ Total multi-website crawling time: %s\n", crawl.FormatDuration(elapsed))
}

func label(e crawl.ProgressEvent) string {
	if e.Title != "" {
		return e.Title
	}
	return e.URL
}
