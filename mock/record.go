package mock

import (
	"context"

	"github.com/fwojciec/doccrawl"
)

var (
	_ doccrawl.RecordService = (*RecordService)(nil)
	_ doccrawl.RunService    = (*RunService)(nil)
)

// RecordService is a mock implementation of doccrawl.RecordService.
type RecordService struct {
	PersistFn             func(ctx context.Context, site *doccrawl.Site, key string, page *doccrawl.Page) error
	FindRecordsFn         func(ctx context.Context, filter doccrawl.RecordFilter) ([]*doccrawl.Record, error)
	DeleteRecordsBySiteFn func(ctx context.Context, site string) error
}

func (s *RecordService) Persist(ctx context.Context, site *doccrawl.Site, key string, page *doccrawl.Page) error {
	return s.PersistFn(ctx, site, key, page)
}

func (s *RecordService) FindRecords(ctx context.Context, filter doccrawl.RecordFilter) ([]*doccrawl.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordsBySite(ctx context.Context, site string) error {
	return s.DeleteRecordsBySiteFn(ctx, site)
}

// RunService is a mock implementation of doccrawl.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *doccrawl.Run) error
	FindRunsFn  func(ctx context.Context, site string, limit int) ([]*doccrawl.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *doccrawl.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, site string, limit int) ([]*doccrawl.Run, error) {
	return s.FindRunsFn(ctx, site, limit)
}
