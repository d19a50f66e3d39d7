package cas

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/repin/internal/core/ports"
)

// NodeID is the unique identifier for the backup store Graft node.
const NodeID graft.ID = "adapter.backup_store"

func init() {
	graft.Register(graft.Node[ports.BackupStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BackupStore, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewStore(cwd), nil
		},
	})
}
