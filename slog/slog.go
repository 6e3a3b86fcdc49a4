// Package slog wraps doccrawl services with structured logging.
package slog

import (
	"context"
	"errors"
	"log/slog"
)

// logLevel reports failures at warn and everything else, cancellation
// included, at debug.
func logLevel(err error) slog.Level {
	if err != nil && !errors.Is(err, context.Canceled) {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
