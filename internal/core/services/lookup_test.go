package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

func sampleResults() []domain.ResultItem {
	return []domain.ResultItem{
		{ID: "id1", Title: "Sample Item 1", Icon: "standard:account"},
		{ID: "id2", Title: "Sample Item 2", Icon: "standard:account"},
		{ID: "id3", Title: "Sample Item 3", Icon: "standard:account"},
	}
}

func TestLookupService_Search_NoBackend(t *testing.T) {
	service := NewLookupService(nil, nil)

	_, err := service.Search(context.Background(), domain.SearchRequest{SearchTerm: "sample"})

	assert.ErrorIs(t, err, domain.ErrSearchUnavailable)
	assert.Equal(t, "none", service.BackendName())
}

func TestLookupService_Search_PassesRequestAndLimit(t *testing.T) {
	backend := &mockBackend{results: sampleResults()}
	service := NewLookupService(backend, nil).WithLimits(7, 0)

	req := domain.SearchRequest{SearchTerm: "sample", RawSearchTerm: "Sample*", SelectedIDs: []string{}}
	results, err := service.Search(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, req, backend.lastReq)
	assert.Equal(t, 7, backend.lastOpts.Limit)
	assert.Equal(t, "mock", service.BackendName())
}

func TestLookupService_Search_ExcludesSelected(t *testing.T) {
	backend := &mockBackend{results: sampleResults()}
	service := NewLookupService(backend, nil)

	results, err := service.Search(context.Background(), domain.SearchRequest{
		SearchTerm:  "sample",
		SelectedIDs: []string{"id2"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"id1", "id3"}, domain.ResultIDs(results))
}

func TestLookupService_Search_TruncatesToLimit(t *testing.T) {
	backend := &mockBackend{results: sampleResults()}
	service := NewLookupService(backend, nil).WithLimits(2, 0)

	results, err := service.Search(context.Background(), domain.SearchRequest{SearchTerm: "sample"})

	require.NoError(t, err)
	assert.Equal(t, []string{"id1", "id2"}, domain.ResultIDs(results))
}

func TestLookupService_Search_WrapsBackendError(t *testing.T) {
	backendErr := errors.New("connection refused")
	service := NewLookupService(&mockBackend{err: backendErr}, nil)

	_, err := service.Search(context.Background(), domain.SearchRequest{SearchTerm: "sample"})

	require.Error(t, err)
	assert.ErrorIs(t, err, backendErr)
	assert.Contains(t, err.Error(), "sample")
}

func TestLookupService_DefaultResults(t *testing.T) {
	t.Run("no recent store", func(t *testing.T) {
		service := NewLookupService(&mockBackend{}, nil)

		results, err := service.DefaultResults(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("converts recent records", func(t *testing.T) {
		recent := &mockRecentStore{records: []domain.Record{
			{ID: "r1", Title: "Recent 1"},
			{ID: "r2", Title: "Recent 2", Icon: "standard:opportunity"},
		}}
		service := NewLookupService(&mockBackend{}, recent).WithLimits(0, 1)

		results, err := service.DefaultResults(context.Background())

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "r1", results[0].ID)
		assert.Equal(t, domain.DefaultIcon, results[0].Icon)
		assert.Equal(t, 1, recent.lastLimit)
	})

	t.Run("store error", func(t *testing.T) {
		service := NewLookupService(&mockBackend{}, &mockRecentStore{err: errors.New("locked")})

		_, err := service.DefaultResults(context.Background())

		assert.Error(t, err)
	})
}

func TestLookupService_RecordSelection(t *testing.T) {
	recent := &mockRecentStore{}
	service := NewLookupService(&mockBackend{}, recent)

	require.NoError(t, service.RecordSelection(context.Background(), []string{"id1", "id2"}))
	require.NoError(t, service.RecordSelection(context.Background(), nil))

	assert.Equal(t, []string{"id1", "id2"}, recent.viewed)
}

func TestLookupService_RecordSelection_NoStore(t *testing.T) {
	service := NewLookupService(&mockBackend{}, nil)

	assert.NoError(t, service.RecordSelection(context.Background(), []string{"id1"}))
}
