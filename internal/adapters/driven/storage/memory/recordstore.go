package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
)

// Ensure RecordStore implements the interfaces.
var (
	_ driven.RecordStore = (*RecordStore)(nil)
	_ driven.RecentStore = (*RecordStore)(nil)
)

// RecordStore is an in-memory implementation of driven.RecordStore and driven.RecentStore.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
	now     func() time.Time
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.Record),
		now:     time.Now,
	}
}

// Save stores or updates a record.
func (s *RecordStore) Save(_ context.Context, record domain.Record) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	s.records[record.ID] = record
	return nil
}

// Get retrieves a record by ID.
func (s *RecordStore) Get(_ context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// Delete removes a record.
func (s *RecordStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// List returns all records ordered by title.
func (s *RecordStore) List(_ context.Context) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked(), nil
}

// Search returns records whose title or subtitle contains term.
func (s *RecordStore) Search(
	_ context.Context, term string, excludeIDs []string, opts domain.SearchOptions,
) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(term)
	var result []domain.Record
	for _, r := range s.sortedLocked() {
		if slices.Contains(excludeIDs, r.ID) {
			continue
		}
		if len(opts.ObjectTypes) > 0 && !slices.Contains(opts.ObjectTypes, r.ObjectType) {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Title), term) &&
			!strings.Contains(strings.ToLower(r.Subtitle), term) {
			continue
		}
		result = append(result, r)
		if opts.Limit > 0 && len(result) == opts.Limit {
			break
		}
	}
	return result, nil
}

// MarkViewed stamps the given records as viewed now.
func (s *RecordStore) MarkViewed(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for _, id := range ids {
		if r, ok := s.records[id]; ok {
			r.ViewedAt = now
			s.records[id] = r
		}
	}
	return nil
}

// Recent returns up to limit viewed records, most recent first.
func (s *RecordStore) Recent(_ context.Context, limit int) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var viewed []domain.Record
	for _, r := range s.records {
		if !r.ViewedAt.IsZero() {
			viewed = append(viewed, r)
		}
	}
	sort.SliceStable(viewed, func(i, j int) bool {
		if viewed[i].ViewedAt.Equal(viewed[j].ViewedAt) {
			return viewed[i].ID < viewed[j].ID
		}
		return viewed[i].ViewedAt.After(viewed[j].ViewedAt)
	})
	if limit > 0 && len(viewed) > limit {
		viewed = viewed[:limit]
	}
	return viewed, nil
}

func (s *RecordStore) sortedLocked() []domain.Record {
	out := make([]domain.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title == out[j].Title {
			return out[i].ID < out[j].ID
		}
		return out[i].Title < out[j].Title
	})
	return out
}
