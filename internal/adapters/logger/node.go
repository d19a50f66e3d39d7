package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/repin/internal/core/ports"
)

// NodeID identifies the console logger that reports sync warnings and
// fatal errors on stderr.
const NodeID graft.ID = "adapter.logger"

// The logger starts in pretty mode; the sync command switches it to JSON
// when --log-format asks for it.
func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
