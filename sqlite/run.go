package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/doccrawl"
	"github.com/google/uuid"
)

var _ doccrawl.RunService = (*RunService)(nil)

// RunService implements doccrawl.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores run and assigns its ID.
func (s *RunService) CreateRun(ctx context.Context, run *doccrawl.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}
	run.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, site, fetched, admitted, failed, bytes, tokens, elapsed_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Site, run.Fetched, run.Admitted, run.Failed, run.Bytes, run.Tokens,
		run.Elapsed.Milliseconds(), run.StartedAt.UTC().Format(time.RFC3339))
	return err
}

// FindRuns retrieves runs, newest first. An empty site matches all sites.
// A limit of zero returns every run.
func (s *RunService) FindRuns(ctx context.Context, site string, limit int) ([]*doccrawl.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site, fetched, admitted, failed, bytes, tokens, elapsed_ms, started_at FROM runs")
	if site != "" {
		query.WriteString(" WHERE site = ?")
		args = append(args, site)
	}
	query.WriteString(" ORDER BY started_at DESC, rowid DESC")
	appendPagination(&query, &args, limit, 0)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*doccrawl.Run
	for rows.Next() {
		var run doccrawl.Run
		var elapsedMS int64
		var startedAt string
		if err := rows.Scan(&run.ID, &run.Site, &run.Fetched, &run.Admitted, &run.Failed,
			&run.Bytes, &run.Tokens, &elapsedMS, &startedAt); err != nil {
			return nil, err
		}
		run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
