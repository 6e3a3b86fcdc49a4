package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doccrawl"
	"github.com/google/uuid"
)

var _ doccrawl.RecordService = (*RecordService)(nil)

// RecordService implements doccrawl.RecordService using SQLite.
// A page is indexed once per site and URL; persisting it again on a later
// crawl updates the existing record.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// Persist implements doccrawl.PageStore.
func (s *RecordService) Persist(ctx context.Context, site *doccrawl.Site, key string, page *doccrawl.Page) error {
	rec := &doccrawl.Record{
		ID:          uuid.New().String(),
		Site:        site.Name,
		URL:         page.URL,
		Key:         key,
		Title:       page.Title,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(page.Content)),
		Bytes:       len(page.Content),
		FetchedAt:   time.Now().UTC(),
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, site, url, key, title, content_hash, bytes, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (site, url) DO UPDATE SET
			key = excluded.key,
			title = excluded.title,
			content_hash = excluded.content_hash,
			bytes = excluded.bytes,
			fetched_at = excluded.fetched_at
	`, rec.ID, rec.Site, rec.URL, rec.Key, rec.Title, rec.ContentHash, rec.Bytes,
		rec.FetchedAt.Format(time.RFC3339))
	return err
}

// FindRecords retrieves records matching the filter in the order they were
// first indexed.
func (s *RecordService) FindRecords(ctx context.Context, filter doccrawl.RecordFilter) ([]*doccrawl.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, site, url, key, title, content_hash, bytes, fetched_at FROM records WHERE 1=1")
	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, *filter.Site)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*doccrawl.Record
	for rows.Next() {
		var rec doccrawl.Record
		var fetchedAt string
		if err := rows.Scan(&rec.ID, &rec.Site, &rec.URL, &rec.Key, &rec.Title,
			&rec.ContentHash, &rec.Bytes, &fetchedAt); err != nil {
			return nil, err
		}
		if rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// DeleteRecordsBySite removes every record of site.
func (s *RecordService) DeleteRecordsBySite(ctx context.Context, site string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE site = ?", site)
	return err
}
