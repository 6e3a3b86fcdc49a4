package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccrawl"
)

var _ doccrawl.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs each sitemap discovery.
type LoggingSitemapService struct {
	next   doccrawl.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService wraps next. A nil logger discards output.
func NewLoggingSitemapService(next doccrawl.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: orDiscard(logger)}
}

func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, logLevel(err), "sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL)
}
