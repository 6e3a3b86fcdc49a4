package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccrawl"
)

var _ doccrawl.PageFetcher = (*LoggingPageFetcher)(nil)

// LoggingPageFetcher logs each page fetch with its title, size and duration.
type LoggingPageFetcher struct {
	next   doccrawl.PageFetcher
	logger *slog.Logger
}

// NewLoggingPageFetcher wraps next. A nil logger discards output.
func NewLoggingPageFetcher(next doccrawl.PageFetcher, logger *slog.Logger) *LoggingPageFetcher {
	return &LoggingPageFetcher{next: next, logger: orDiscard(logger)}
}

func (f *LoggingPageFetcher) FetchPage(ctx context.Context, site *doccrawl.Site, url string) (page *doccrawl.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"site", site.Name,
			"url", url,
			"duration", time.Since(begin),
		}
		if page != nil {
			attrs = append(attrs, "title", page.Title, "chars", len(page.Content), "links", len(page.Links))
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.Log(ctx, logLevel(err), "fetch page", attrs...)
	}(time.Now())
	return f.next.FetchPage(ctx, site, url)
}
