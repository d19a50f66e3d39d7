package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/repin/internal/adapters/watcher"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/core/ports"
)

func TestWatcher_ReportsOnlyTargetFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "installed.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(target, []byte("a==1\n"), domain.FilePerm))

	w, err := watcher.NewFactory(nil).NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, target))

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	require.NoError(t, os.WriteFile(other, []byte("x\n"), domain.FilePerm))
	require.NoError(t, os.WriteFile(target, []byte("a==2\n"), domain.FilePerm))

	abs, err := filepath.Abs(target)
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, abs, ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the watched file")
	}
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "installed.txt")
	require.NoError(t, os.WriteFile(target, nil, domain.FilePerm))

	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, target))
	cancel()

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event iterator did not end after cancel")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	w, err := watcher.NewWatcher(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start(context.Background(), filepath.Join(t.TempDir(), "missing", "installed.txt"))
	assert.Error(t, err)
}
