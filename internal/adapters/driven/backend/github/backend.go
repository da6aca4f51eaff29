package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/logger"
)

// Ensure Backend implements the interface.
var _ driven.SearchBackend = (*Backend)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// RepositoryIcon is the icon given to repository candidates.
	RepositoryIcon = "standard:repository"

	// MaxPerPage is the largest page size the search API accepts.
	MaxPerPage = 100
)

// Backend searches GitHub repositories.
type Backend struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
	qualifier   string
}

// Option configures a Backend.
type Option func(*Backend) error

// WithOwner restricts results to repositories owned by a user or organisation.
func WithOwner(owner string) Option {
	return func(b *Backend) error {
		if owner != "" {
			b.qualifier = "user:" + owner
		}
		return nil
	}
}

// WithBaseURL points the client at a different API root, e.g. GitHub Enterprise.
func WithBaseURL(raw string) Option {
	return func(b *Backend) error {
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%w: base url: %v", domain.ErrInvalidInput, err)
		}
		b.gh.BaseURL = u
		return nil
	}
}

// WithRateLimiter replaces the default rate limiter.
func WithRateLimiter(r *RateLimiter) Option {
	return func(b *Backend) error {
		b.rateLimiter = r
		return nil
	}
}

// New creates a GitHub backend. An empty token uses unauthenticated access,
// which GitHub limits to 10 searches per minute.
func New(ctx context.Context, token string, opts ...Option) (*Backend, error) {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout

	b := &Backend{
		gh:          gh.NewClient(hc),
		rateLimiter: NewRateLimiter(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return domain.BackendGitHub.String()
}

// Search runs a repository search for the clean term.
func (b *Backend) Search(
	ctx context.Context, req domain.SearchRequest, opts domain.SearchOptions,
) ([]domain.ResultItem, error) {
	if err := b.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	perPage := opts.Limit
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = domain.DefaultResultLimit
	}
	query := b.query(req.SearchTerm)
	logger.Debug("github search q=%q per_page=%d", query, perPage)

	found, resp, err := b.gh.Search.Repositories(ctx, query, &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	})
	if resp != nil {
		b.rateLimiter.UpdateFromResponse(resp.Response)
	}
	if err != nil {
		return nil, b.wrapError(err)
	}

	results := make([]domain.ResultItem, 0, len(found.Repositories))
	for _, repo := range found.Repositories {
		results = append(results, toResult(repo))
	}
	return domain.ExcludeIDs(results, req.SelectedIDs), nil
}

func (b *Backend) query(term string) string {
	q := term + " in:name,description"
	if b.qualifier != "" {
		q += " " + b.qualifier
	}
	return q
}

func toResult(repo *gh.Repository) domain.ResultItem {
	return domain.ResultItem{
		ID:       strconv.FormatInt(repo.GetID(), 10),
		Title:    repo.GetFullName(),
		Subtitle: repo.GetDescription(),
		Icon:     RepositoryIcon,
	}
}

// wrapError converts go-github errors to domain errors.
func (b *Backend) wrapError(err error) error {
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: github resets at %s", domain.ErrRateLimited,
			b.rateLimiter.ResetTime().Format(time.RFC3339))
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		switch ghErr.Response.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: github: %s", domain.ErrAuthRequired, ghErr.Message)
		case http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: github: %s", domain.ErrInvalidInput, ghErr.Message)
		}
		return fmt.Errorf("github: API error %d: %s", ghErr.Response.StatusCode, ghErr.Message)
	}

	return fmt.Errorf("github search: %w", err)
}
