package matrix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/adapters/dotnet" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/purge/internal/core/ports"
)

// NodeID is the unique identifier for the matrix resolver Graft node.
const NodeID graft.ID = "engine.matrix"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{dotnet.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			tool, err := graft.Dep[ports.BuildTool](ctx)
			if err != nil {
				return nil, err
			}
			return New(tool), nil
		},
	})
}
