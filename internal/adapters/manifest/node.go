package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scaffold/internal/adapters/fs"
	"go.trai.ch/scaffold/internal/core/ports"
)

// NodeID is the unique identifier for the manifest parser Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ManifestParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.ManifestParser, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(fsys), nil
		},
	})
}
