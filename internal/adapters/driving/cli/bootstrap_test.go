package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lookup/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lookup/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lookup/internal/core/domain"
	"github.com/custodia-labs/lookup/internal/core/services"
)

func writeConfig(t *testing.T, dir string, values map[string]any) {
	t.Helper()
	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	for k, v := range values {
		require.NoError(t, store.Set(k, v))
	}
}

func TestBootstrap_SQLiteDefault(t *testing.T) {
	dir := t.TempDir()

	svc, closer, err := Bootstrap(t.Context(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	assert.Equal(t, "sqlite", svc.Lookup.BackendName())
	assert.Equal(t, filepath.Join(dir, "config.toml"), svc.ConfigPath)
	assert.NotNil(t, svc.Navigation)

	require.NoError(t, svc.Records.Save(t.Context(), domain.Record{ID: "r1", Title: "Acme"}))
	results, err := svc.Lookup.Search(t.Context(), domain.SearchRequest{SearchTerm: "acme"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "r1", results[0].ID)
}

func TestBootstrap_MemoryWithSeed(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.toml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
[[records]]
id = "acc-1"
title = "Acme Corporation"
object_type = "Account"
`), 0o600))
	writeConfig(t, dir, map[string]any{
		services.KeyBackend: "memory",
		KeyMemorySeedFile:   seedPath,
	})

	svc, closer, err := Bootstrap(t.Context(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	assert.Equal(t, "memory", svc.Lookup.BackendName())
	assert.IsType(t, &memory.RecordStore{}, svc.Records)
	results, err := svc.Lookup.Search(t.Context(), domain.SearchRequest{SearchTerm: "acme"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "acc-1", results[0].ID)
}

func TestBootstrap_GitHub(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, map[string]any{
		services.KeyBackend: "github",
		KeyGitHubOwner:      "custodia-labs",
		KeyGitHubBaseURL:    "http://127.0.0.1:1/api/v3",
	})

	svc, closer, err := Bootstrap(t.Context(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	assert.Equal(t, "github", svc.Lookup.BackendName())
}

func TestBootstrap_InvalidBackend(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, map[string]any{services.KeyBackend: "ldap"})

	_, _, err := Bootstrap(t.Context(), dir)

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestBootstrap_InvalidNavigationURL(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, map[string]any{
		services.KeyBackend:  "memory",
		KeyNavigationBaseURL: "not a url",
	})

	_, _, err := Bootstrap(t.Context(), dir)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBootstrap_MissingSeedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, map[string]any{
		services.KeyBackend: "memory",
		KeyMemorySeedFile:   filepath.Join(dir, "missing.yaml"),
	})

	_, _, err := Bootstrap(t.Context(), dir)

	assert.Error(t, err)
}
