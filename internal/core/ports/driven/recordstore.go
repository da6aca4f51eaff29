package driven

import (
	"context"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// RecordStore persists lookup records.
type RecordStore interface {
	// Save stores or updates a record.
	Save(ctx context.Context, record domain.Record) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Record, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error

	// List returns all records ordered by title.
	List(ctx context.Context) ([]domain.Record, error)

	// Search returns records whose title or subtitle contains term,
	// case-insensitively, skipping excludeIDs.
	Search(ctx context.Context, term string, excludeIDs []string, opts domain.SearchOptions) ([]domain.Record, error)
}

// RecentStore tracks recently viewed records.
type RecentStore interface {
	// MarkViewed records that the given records were selected now.
	// Unknown ids are ignored.
	MarkViewed(ctx context.Context, ids []string) error

	// Recent returns up to limit records, most recently viewed first.
	Recent(ctx context.Context, limit int) ([]domain.Record, error)
}
