package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccrawl"
)

var _ doccrawl.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore logs every persisted page.
type LoggingPageStore struct {
	next   doccrawl.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore wraps next. A nil logger discards output.
func NewLoggingPageStore(next doccrawl.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: orDiscard(logger)}
}

func (s *LoggingPageStore) Persist(ctx context.Context, site *doccrawl.Site, key string, page *doccrawl.Page) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(ctx, logLevel(err), "persist page",
			"site", site.Name,
			"key", key,
			"url", page.URL,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Persist(ctx, site, key, page)
}
