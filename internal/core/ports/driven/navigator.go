package driven

import (
	"context"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// Navigator opens a page described by a page reference.
type Navigator interface {
	Navigate(ctx context.Context, page domain.PageReference) error
}
