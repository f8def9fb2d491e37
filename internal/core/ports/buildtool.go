// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/purge/internal/core/domain"
)

// BuildTool is the gateway to the external build system.
//
// Every call names its project explicitly; implementations must not depend on the
// process working directory so that projects can be processed concurrently.
//
//go:generate go run go.uber.org/mock/mockgen -source=buildtool.go -destination=mocks/mock_buildtool.go -package=mocks
type BuildTool interface {
	// Evaluate resolves the given properties of a project. A zero overrides key evaluates
	// the project with its defaults; otherwise Configuration and TargetFramework are
	// passed as global properties.
	//
	// A non-zero exit returns domain.ErrEvaluationFailed carrying the captured output.
	Evaluate(
		ctx context.Context,
		projectPath string,
		overrides domain.ConfigurationKey,
		properties []string,
	) (map[string]string, error)

	// Clean runs the clean action for a project with the given arguments.
	//
	// A non-zero exit returns domain.ErrCleanFailed carrying the captured output.
	Clean(ctx context.Context, projectPath string, args []string) error
}
