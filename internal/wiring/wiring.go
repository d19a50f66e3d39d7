// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/repin/internal/adapters/cas"
	_ "go.trai.ch/repin/internal/adapters/config"
	_ "go.trai.ch/repin/internal/adapters/fs"
	_ "go.trai.ch/repin/internal/adapters/linear"
	_ "go.trai.ch/repin/internal/adapters/logger"
	_ "go.trai.ch/repin/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/repin/internal/app"
)
