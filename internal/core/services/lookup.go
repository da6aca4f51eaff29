package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/core/ports/driving"
	"github.com/custodia-labs/lookup/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService answers lookup events using a search backend and a recent store.
type LookupService struct {
	backend     driven.SearchBackend
	recent      driven.RecentStore
	resultLimit int
	recentLimit int
}

// NewLookupService creates a new lookup service.
// The recent store is optional (can be nil).
func NewLookupService(backend driven.SearchBackend, recent driven.RecentStore) *LookupService {
	return &LookupService{
		backend:     backend,
		recent:      recent,
		resultLimit: domain.DefaultResultLimit,
		recentLimit: domain.DefaultRecentLimit,
	}
}

// WithLimits overrides the result and recent limits. Non-positive values are ignored.
func (s *LookupService) WithLimits(resultLimit, recentLimit int) *LookupService {
	if resultLimit > 0 {
		s.resultLimit = resultLimit
	}
	if recentLimit > 0 {
		s.recentLimit = recentLimit
	}
	return s
}

// Search performs a search for a lookup search event.
func (s *LookupService) Search(ctx context.Context, req domain.SearchRequest) ([]domain.ResultItem, error) {
	if s.backend == nil {
		return nil, domain.ErrSearchUnavailable
	}

	logger.Section("Lookup Search")
	log := logger.Logr().WithName("lookup").WithValues("backend", s.backend.Name(), "term", req.SearchTerm)
	log.Info("search", "raw", req.RawSearchTerm, "selected", req.SelectedIDs)

	results, err := s.backend.Search(ctx, req, domain.SearchOptions{Limit: s.resultLimit})
	if err != nil {
		logger.Warn("search %q failed: %v", req.SearchTerm, err)
		return nil, fmt.Errorf("search %q: %w", req.SearchTerm, err)
	}

	results = domain.ExcludeIDs(results, req.SelectedIDs)
	if len(results) > s.resultLimit {
		results = results[:s.resultLimit]
	}
	log.Info("search done", "results", len(results))
	return results, nil
}

// DefaultResults returns recently viewed records.
func (s *LookupService) DefaultResults(ctx context.Context) ([]domain.ResultItem, error) {
	if s.recent == nil {
		return []domain.ResultItem{}, nil
	}

	records, err := s.recent.Recent(ctx, s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent records: %w", err)
	}
	logger.Debug("loaded %d recent records", len(records))
	return domain.RecordsToResults(records), nil
}

// RecordSelection marks the selected ids as viewed.
func (s *LookupService) RecordSelection(ctx context.Context, ids []string) error {
	if s.recent == nil || len(ids) == 0 {
		return nil
	}
	if err := s.recent.MarkViewed(ctx, ids); err != nil {
		return fmt.Errorf("mark viewed: %w", err)
	}
	return nil
}

// BackendName identifies the configured search backend.
func (s *LookupService) BackendName() string {
	if s.backend == nil {
		return "none"
	}
	return s.backend.Name()
}
