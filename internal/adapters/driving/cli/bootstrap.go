package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/lookup/internal/adapters/driven/backend"
	"github.com/custodia-labs/lookup/internal/adapters/driven/backend/github"
	"github.com/custodia-labs/lookup/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lookup/internal/adapters/driven/navigation"
	"github.com/custodia-labs/lookup/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lookup/internal/adapters/driven/storage/seed"
	"github.com/custodia-labs/lookup/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/ports/driven"
	"github.com/custodia-labs/lookup/internal/core/services"
	"github.com/custodia-labs/lookup/internal/logger"
)

// Config keys read while wiring backends.
const (
	KeyNavigationBaseURL = "navigation.base_url"
	KeyGitHubOwner       = "github.owner"
	KeyGitHubBaseURL     = "github.base_url"
	KeyMemorySeedFile    = "memory.seed_file"
)

// DefaultNavigationBaseURL is used when navigation.base_url is unset.
const DefaultNavigationBaseURL = "http://localhost:8080"

// GitHub allows 30 authenticated searches per minute.
const (
	githubSearchesPerSecond = 0.5
	githubSearchBurst       = 5
)

// recordRepository stores records and remembers which were viewed.
type recordRepository interface {
	driven.RecordStore
	driven.RecentStore
}

// Bootstrap wires services from the configuration in dir.
// The returned function releases storage.
func Bootstrap(ctx context.Context, dir string) (*Services, func() error, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".lookup")
	}
	logger.Section("Bootstrap")
	logger.Debug("config dir: %s", dir)

	config, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening config: %w", err)
	}
	settingsSvc := services.NewSettingsService(config)
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("loading settings: %w", err)
	}

	records, closer, err := openRecords(ctx, dir, settings.Backend, config)
	if err != nil {
		return nil, nil, err
	}

	searchBackend, err := newBackend(ctx, settings.Backend, records, config)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	logger.Debug("search backend: %s", searchBackend.Name())

	baseURL := config.GetString(KeyNavigationBaseURL)
	if baseURL == "" {
		baseURL = DefaultNavigationBaseURL
	}
	browser, err := navigation.NewBrowser(baseURL)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}

	return &Services{
		Lookup: services.NewLookupService(searchBackend, records).
			WithLimits(settings.ResultLimit, settings.RecentLimit),
		Navigation: services.NewNavigationService(browser),
		Settings:   settingsSvc,
		Records:    records,
		ConfigPath: config.Path(),
	}, closer, nil
}

// openRecords opens the record store. The memory backend keeps records for
// the process lifetime; every other backend persists them in SQLite.
func openRecords(
	ctx context.Context,
	dir string,
	kind domain.BackendType,
	config driven.ConfigStore,
) (recordRepository, func() error, error) {
	if kind == domain.BackendMemory {
		store := memory.NewRecordStore()
		if path := config.GetString(KeyMemorySeedFile); path != "" {
			recs, err := seed.LoadFile(path)
			if err != nil {
				return nil, nil, err
			}
			if _, err := seed.Import(ctx, store, recs); err != nil {
				return nil, nil, err
			}
		}
		return store, func() error { return nil }, nil
	}

	store, err := sqlite.NewStore(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening record store: %w", err)
	}
	return store, store.Close, nil
}

// newBackend builds the search backend for kind.
func newBackend(
	ctx context.Context,
	kind domain.BackendType,
	records driven.RecordStore,
	config driven.ConfigStore,
) (driven.SearchBackend, error) {
	switch kind {
	case domain.BackendSQLite, domain.BackendMemory:
		return backend.NewRecords(records, kind.String()), nil
	case domain.BackendGitHub:
		opts := []github.Option{github.WithOwner(config.GetString(KeyGitHubOwner))}
		if base := config.GetString(KeyGitHubBaseURL); base != "" {
			opts = append(opts, github.WithBaseURL(base))
		}
		gh, err := github.New(ctx, os.Getenv("GITHUB_TOKEN"), opts...)
		if err != nil {
			return nil, fmt.Errorf("creating github backend: %w", err)
		}
		return backend.NewThrottled(gh, githubSearchesPerSecond, githubSearchBurst), nil
	default:
		return nil, fmt.Errorf("%w: backend %q", domain.ErrUnsupportedType, kind)
	}
}
