package doccrawl

import (
	"context"
	"time"
)

// Record is the index entry of a persisted page.
type Record struct {
	ID          string    `json:"id"`
	Site        string    `json:"site"`
	URL         string    `json:"url"`
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Bytes       int       `json:"bytes"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Site == "" {
		return Errorf(EINVALID, "record site required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Key == "" {
		return Errorf(EINVALID, "record key required")
	}
	return nil
}

// RecordService represents a service for managing page records.
// It implements PageStore so it can sit next to the file writer.
type RecordService interface {
	PageStore

	// FindRecords retrieves records matching the filter,
	// ordered by fetch time.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecordsBySite removes all records of a site.
	DeleteRecordsBySite(ctx context.Context, site string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Site *string `json:"site"`
	URL  *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
