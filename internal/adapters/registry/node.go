package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/fs"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the capability registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.CapabilityResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.CapabilityResolver, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			reg := New()
			if err := RegisterSystem(reg, OSStreams, fsys); err != nil {
				return nil, err
			}
			return reg, nil
		},
	})
}
