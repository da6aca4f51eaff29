package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/lookup/internal/core/domain"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc, opts ...Option) *Backend {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	limiter := NewRateLimiter()
	limiter.bucket = rate.NewLimiter(rate.Inf, 1)
	opts = append([]Option{WithBaseURL(server.URL), WithRateLimiter(limiter)}, opts...)

	b, err := New(context.Background(), "test-token", opts...)
	require.NoError(t, err)
	return b
}

func TestBackend_Search(t *testing.T) {
	var gotQuery, gotAuth, gotPerPage string
	b := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/repositories", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		gotPerPage = r.URL.Query().Get("per_page")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set(HeaderRateRemaining, "28")
		w.Header().Set(HeaderRateLimit, "30")
		fmt.Fprint(w, `{"total_count":2,"items":[
			{"id":1,"full_name":"acme/sample","description":"Sample repo"},
			{"id":2,"full_name":"acme/sample-cli"}
		]}`)
	}, WithOwner("acme"))

	results, err := b.Search(context.Background(),
		domain.SearchRequest{SearchTerm: "sample", SelectedIDs: []string{"2"}},
		domain.SearchOptions{Limit: 5})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, domain.ResultItem{ID: "1", Title: "acme/sample", Subtitle: "Sample repo", Icon: RepositoryIcon}, results[0])
	assert.Equal(t, "sample in:name,description user:acme", gotQuery)
	assert.Equal(t, "5", gotPerPage)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, 28, b.rateLimiter.Remaining())
	assert.Equal(t, "github", b.Name())
}

func TestBackend_Search_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, nil, domain.ErrAuthRequired},
		{"validation failed", http.StatusUnprocessableEntity, nil, domain.ErrInvalidInput},
		{"rate limited", http.StatusForbidden, map[string]string{
			HeaderRateRemaining: "0", HeaderRateLimit: "30", HeaderRateReset: "1900000000",
		}, domain.ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{"message":"API rate limit exceeded for user"}`)
			})

			_, err := b.Search(context.Background(), domain.SearchRequest{SearchTerm: "x"}, domain.SearchOptions{})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	r := NewRateLimiter()
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set(HeaderRateRemaining, "3")
	resp.Header.Set(HeaderRateLimit, "10")
	resp.Header.Set(HeaderRateReset, "1700000000")

	r.UpdateFromResponse(resp)
	r.UpdateFromResponse(nil)

	assert.Equal(t, 3, r.Remaining())
	assert.Equal(t, 10, r.Limit())
	assert.Equal(t, int64(1700000000), r.ResetTime().Unix())
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	r := NewRateLimiter()
	r.bucket = rate.NewLimiter(rate.Inf, 1)
	r.remaining = 0
	r.resetTime = r.resetTime.AddDate(3000, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, r.Wait(ctx))
}
