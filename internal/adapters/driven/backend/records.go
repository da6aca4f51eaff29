package backend

import (
	"context"
	"fmt"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
)

// Ensure Records implements the interface.
var _ driven.SearchBackend = (*Records)(nil)

// Records answers searches from a record store.
type Records struct {
	store driven.RecordStore
	name  string
}

// NewRecords creates a backend over store, reported under name.
func NewRecords(store driven.RecordStore, name string) *Records {
	return &Records{store: store, name: name}
}

// Search returns matching records as lookup candidates.
func (r *Records) Search(
	ctx context.Context, req domain.SearchRequest, opts domain.SearchOptions,
) ([]domain.ResultItem, error) {
	records, err := r.store.Search(ctx, req.SearchTerm, req.SelectedIDs, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.name, err)
	}
	return domain.RecordsToResults(records), nil
}

// Name returns the backend name.
func (r *Records) Name() string {
	return r.name
}
