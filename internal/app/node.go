package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/repin/internal/adapters/cas"     //nolint:depguard // Wired in app layer
	"go.trai.ch/repin/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/repin/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/repin/internal/adapters/linear"  //nolint:depguard // Wired in app layer
	"go.trai.ch/repin/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/repin/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/repin/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			cas.NodeID,
			linear.NodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.FileStore](ctx)
	if err != nil {
		return nil, err
	}
	backups, err := graft.Dep[ports.BackupStore](ctx)
	if err != nil {
		return nil, err
	}
	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, store, backups, reporter, log, watchers), nil
}
