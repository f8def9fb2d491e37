// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/purge/internal/adapters/config"
	_ "go.trai.ch/purge/internal/adapters/dotnet"
	_ "go.trai.ch/purge/internal/adapters/fs"
	_ "go.trai.ch/purge/internal/adapters/linear"
	_ "go.trai.ch/purge/internal/adapters/logger"
	_ "go.trai.ch/purge/internal/adapters/nuget"
	_ "go.trai.ch/purge/internal/adapters/solution"
	_ "go.trai.ch/purge/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/purge/internal/app"
	_ "go.trai.ch/purge/internal/engine/discovery"
	_ "go.trai.ch/purge/internal/engine/matrix"
	_ "go.trai.ch/purge/internal/engine/purger"
)
