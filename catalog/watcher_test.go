package catalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectChanges(t *testing.T, root string) (<-chan Change, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan Change, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, slog.New(slog.DiscardHandler), func(c Change) {
			changes <- c
		})
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})
	// Give the watcher a moment to register the directories.
	time.Sleep(100 * time.Millisecond)
	return changes, cancel
}

func waitChange(t *testing.T, changes <-chan Change) Change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("no change observed")
		return Change{}
	}
}

func TestWatchReportsCreatedBook(t *testing.T) {
	root := t.TempDir()
	changes, _ := collectChanges(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "Dune.epub"), []byte("book"), 0o644))

	c := waitChange(t, changes)
	assert.Equal(t, FileCreated, c.Kind)
	assert.Equal(t, "Dune.epub", c.File.Path)
	assert.Equal(t, "epub", c.File.Kind)
	assert.Equal(t, uint64(4), c.File.Size)
}

func TestWatchDebouncesWriteBursts(t *testing.T) {
	root := t.TempDir()
	changes, _ := collectChanges(t, root)

	path := filepath.Join(root, "Cosmos.epub")
	f, err := os.Create(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := f.Write([]byte("chunk"))
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}
	require.NoError(t, f.Close())

	c := waitChange(t, changes)
	assert.Equal(t, FileCreated, c.Kind)
	assert.Equal(t, "Cosmos.epub", c.File.Path)

	// The burst settles to a single change.
	select {
	case extra := <-changes:
		t.Errorf("unexpected extra change: %+v", extra)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatchReportsRemovedBook(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "Walden.epub")
	require.NoError(t, os.WriteFile(path, []byte("book"), 0o644))

	changes, _ := collectChanges(t, root)
	require.NoError(t, os.Remove(path))

	c := waitChange(t, changes)
	assert.Equal(t, FileRemoved, c.Kind)
	assert.Equal(t, "Walden.epub", c.File.Path)
}

func TestWatchIgnoresNonBookFiles(t *testing.T) {
	root := t.TempDir()
	changes, _ := collectChanges(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "cover.jpg"), []byte("img"), 0o644))

	select {
	case c := <-changes:
		t.Errorf("unexpected change for a non-book file: %+v", c)
	case <-time.After(500 * time.Millisecond):
	}
}
