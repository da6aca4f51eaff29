package driving

import (
	"context"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// LookupService answers the events a lookup emits.
type LookupService interface {
	// Search performs a search for a lookup search event.
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.ResultItem, error)

	// DefaultResults returns the results shown before the user types,
	// typically recently viewed records.
	DefaultResults(ctx context.Context) ([]domain.ResultItem, error)

	// RecordSelection notes that ids were selected so they show up as recent.
	RecordSelection(ctx context.Context, ids []string) error

	// BackendName identifies the configured search backend.
	BackendName() string
}

// NavigationService performs navigation requests from new-record options.
type NavigationService interface {
	Navigate(ctx context.Context, page domain.PageReference) error
}
