package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/purge/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/purge/internal/adapters/solution" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/purge/internal/core/ports"
)

// NodeID is the unique identifier for the discovery Graft node.
const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[*Discoverer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			solution.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Discoverer, error) {
			walker, err := graft.Dep[ports.FileWalker](ctx)
			if err != nil {
				return nil, err
			}

			solutions, err := graft.Dep[ports.SolutionReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(walker, solutions, log), nil
		},
	})
}
