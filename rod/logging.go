package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccrawl"
)

var _ doccrawl.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every browser fetch at debug level, failures at warn.
type LoggingFetcher struct {
	next   doccrawl.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher wraps next. A nil logger discards output.
func NewLoggingFetcher(next doccrawl.Fetcher, logger *slog.Logger) *LoggingFetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingFetcher{next: next, logger: logger.With("fetcher", "rod")}
}

func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (resp *doccrawl.Response, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if resp != nil {
			attrs = append(attrs, "bytes", len(resp.HTML))
			if resp.URL != url {
				attrs = append(attrs, "final_url", resp.URL)
			}
		}
		if err != nil {
			level = slog.LevelWarn
			attrs = append(attrs, "err", err)
		}
		f.logger.Log(ctx, level, "fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
