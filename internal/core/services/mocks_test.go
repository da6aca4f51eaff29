package services

import (
	"context"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

// mockBackend implements driven.SearchBackend for testing.
type mockBackend struct {
	results  []domain.ResultItem
	err      error
	lastReq  domain.SearchRequest
	lastOpts domain.SearchOptions
	calls    int
}

func (m *mockBackend) Search(_ context.Context, req domain.SearchRequest, opts domain.SearchOptions) ([]domain.ResultItem, error) {
	m.calls++
	m.lastReq = req
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return domain.CloneResults(m.results), nil
}

func (m *mockBackend) Name() string {
	return "mock"
}

// mockRecentStore implements driven.RecentStore for testing.
type mockRecentStore struct {
	records   []domain.Record
	err       error
	viewed    []string
	lastLimit int
}

func (m *mockRecentStore) MarkViewed(_ context.Context, ids []string) error {
	if m.err != nil {
		return m.err
	}
	m.viewed = append(m.viewed, ids...)
	return nil
}

func (m *mockRecentStore) Recent(_ context.Context, limit int) ([]domain.Record, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

// mockNavigator implements driven.Navigator for testing.
type mockNavigator struct {
	pages []domain.PageReference
	err   error
}

func (m *mockNavigator) Navigate(_ context.Context, page domain.PageReference) error {
	if m.err != nil {
		return m.err
	}
	m.pages = append(m.pages, page)
	return nil
}
