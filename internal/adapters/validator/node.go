package validator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/fs"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the structure validator Graft node.
const NodeID graft.ID = "adapter.validator"

func init() {
	graft.Register(graft.Node[ports.StructureValidator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.StructureValidator, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys), nil
		},
	})
}
