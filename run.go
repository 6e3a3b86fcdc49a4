package doccrawl

import (
	"context"
	"time"
)

// Run is the summary of one site crawl.
type Run struct {
	ID        string        `json:"id"`
	Site      string        `json:"site"`
	Fetched   int           `json:"fetched"`
	Admitted  int           `json:"admitted"`
	Failed    int           `json:"failed"`
	Bytes     int           `json:"bytes"`
	Tokens    int           `json:"tokens"`
	Elapsed   time.Duration `json:"elapsed"`
	StartedAt time.Time     `json:"startedAt"`
}

// NewRun builds a Run from a site's final counters.
func NewRun(site string, startedAt time.Time, c Counters) *Run {
	return &Run{
		Site:      site,
		Fetched:   c.Fetched,
		Admitted:  c.Admitted,
		Failed:    c.Failed,
		Bytes:     c.Bytes,
		Tokens:    c.Tokens,
		Elapsed:   c.Elapsed,
		StartedAt: startedAt,
	}
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Site == "" {
		return Errorf(EINVALID, "run site required")
	}
	if r.Admitted > r.Fetched {
		return Errorf(EINVALID, "run admitted %d pages but fetched only %d", r.Admitted, r.Fetched)
	}
	return nil
}

// RunService records crawl runs.
type RunService interface {
	// CreateRun stores a run and assigns its ID.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs, newest first. An empty site matches all sites.
	FindRuns(ctx context.Context, site string, limit int) ([]*Run, error)
}
