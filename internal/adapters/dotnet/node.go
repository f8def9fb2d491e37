package dotnet

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/adapters/logger"
	"go.trai.ch/purge/internal/core/ports"
)

// NodeID is the unique identifier for the build tool Graft node.
const NodeID graft.ID = "adapter.buildtool"

func init() {
	graft.Register(graft.Node[ports.BuildTool]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildTool, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCLI(log), nil
		},
	})
}
