package driven

import (
	"context"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// SearchBackend answers lookup search requests.
// Implementations may be local (SQLite, memory) or remote (GitHub).
type SearchBackend interface {
	// Search returns candidates matching req.SearchTerm.
	// Implementations should not return items whose id is in req.SelectedIDs,
	// although the lookup filters them again.
	Search(ctx context.Context, req domain.SearchRequest, opts domain.SearchOptions) ([]domain.ResultItem, error)

	// Name identifies the backend in logs and status output.
	Name() string
}
