package app

import (
	"context"
	"sync"

	"go.trai.ch/repin/internal/adapters/watcher" //nolint:depguard // debouncer is shared with the watcher adapter
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/engine/rewrite"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// watch syncs again after every settled change to the snapshot file until
// ctx is done. Syncs never overlap.
func (a *App) watch(
	ctx context.Context,
	snapshotPath string,
	files []string,
	cfg *domain.Config,
	rw *rewrite.Rewriter,
) error {
	w, err := a.watchers.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = w.Stop() }()

	g, gctx := errgroup.WithContext(ctx)
	if err := w.Start(gctx, snapshotPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", snapshotPath)
	}
	a.logger.Info("Watching " + snapshotPath + " for changes")

	var mu sync.Mutex
	debouncer := watcher.NewDebouncer(a.debounce, func([]string) {
		mu.Lock()
		defer mu.Unlock()
		if gctx.Err() != nil {
			return
		}
		if _, err := a.syncOnce(snapshotPath, files, cfg, rw); err != nil {
			a.logger.Error(err)
		}
	})

	g.Go(func() error {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		debouncer.Stop()
		return w.Stop()
	})

	err = g.Wait()

	// Let a sync that is already running finish.
	mu.Lock()
	defer mu.Unlock()
	return err
}
