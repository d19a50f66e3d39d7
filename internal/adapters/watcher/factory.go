package watcher

import "go.trai.ch/repin/internal/core/ports"

// Factory creates fsnotify watchers. Watch mode needs a fresh watcher per
// run, so the graft node provides a factory instead of a watcher.
type Factory struct {
	logger ports.Logger
}

var _ ports.WatcherFactory = (*Factory)(nil)

// NewFactory creates a Factory whose watchers report errors to logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewWatcher creates a new fsnotify-backed watcher.
func (f *Factory) NewWatcher() (ports.Watcher, error) {
	return NewWatcher(f.logger)
}
