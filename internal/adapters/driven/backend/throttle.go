package backend

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
)

// Ensure Throttled implements the interface.
var _ driven.SearchBackend = (*Throttled)(nil)

// DefaultMaxWait bounds how long a search waits for a token before giving up.
const DefaultMaxWait = 2 * time.Second

// Throttled limits the rate of searches reaching the wrapped backend.
// A search that cannot get a token within maxWait fails with domain.ErrRateLimited.
type Throttled struct {
	next    driven.SearchBackend
	limiter *rate.Limiter
	maxWait time.Duration
}

// NewThrottled wraps next with a token bucket of perSecond tokens and the given burst.
func NewThrottled(next driven.SearchBackend, perSecond float64, burst int) *Throttled {
	if burst < 1 {
		burst = 1
	}
	return &Throttled{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
		maxWait: DefaultMaxWait,
	}
}

// WithMaxWait overrides the wait bound.
func (t *Throttled) WithMaxWait(d time.Duration) *Throttled {
	t.maxWait = d
	return t
}

// Search waits for a token, then delegates.
func (t *Throttled) Search(
	ctx context.Context, req domain.SearchRequest, opts domain.SearchOptions,
) ([]domain.ResultItem, error) {
	waitCtx, cancel := context.WithTimeout(ctx, t.maxWait)
	defer cancel()

	if err := t.limiter.Wait(waitCtx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrRateLimited, t.next.Name())
	}
	return t.next.Search(ctx, req, opts)
}

// Name returns the wrapped backend's name.
func (t *Throttled) Name() string {
	return t.next.Name()
}
