package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp int

const (
	// OpWrite indicates a file write operation.
	OpWrite WatchOp = iota
	// OpCreate indicates a file creation operation.
	OpCreate
	// OpRemove indicates a file removal operation.
	OpRemove
	// OpRename indicates a file rename operation.
	OpRename
)

// WatchEvent represents a change to a watched file.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher reports changes to a set of files.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given files. Events stop when ctx is done.
	Start(ctx context.Context, paths ...string) error

	// Stop releases the watcher.
	Stop() error

	// Events yields changes to the watched files.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates watchers on demand.
type WatcherFactory interface {
	NewWatcher() (Watcher, error)
}
