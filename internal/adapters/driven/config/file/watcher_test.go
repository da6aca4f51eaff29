package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[lookup]\n"), 0600))

	w := NewWatcher(path)
	w.debounce = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	assert.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("[lookup]\nlabel = \"x\"\n"), 0600)
		select {
		case <-w.Changes():
			return true
		default:
			return false
		}
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(filepath.Join(dir, "config.toml"))
	w.debounce = 10 * time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		_ = os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0600)
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-w.Changes():
		t.Fatal("unexpected change for unrelated file")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "gone", "config.toml"))

	err := w.Run(context.Background())

	assert.Error(t, err)
}
