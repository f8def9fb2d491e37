package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/nuget"     //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/purge/internal/engine/discovery"
	"go.trai.ch/purge/internal/engine/matrix"
	"go.trai.ch/purge/internal/engine/purger"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			discovery.NodeID,
			matrix.NodeID,
			purger.NodeID,
			linear.NodeID,
			nuget.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	discoverer, err := graft.Dep[*discovery.Discoverer](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*matrix.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	purgr, err := graft.Dep[*purger.Purger](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	versions, err := graft.Dep[ports.VersionChecker](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, discoverer, resolver, purgr, reporter, versions, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
