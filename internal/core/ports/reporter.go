package ports

import "go.trai.ch/purge/internal/core/domain"

// Reporter renders the user-facing progress of a run.
// Implementations must be safe for concurrent use when projects are purged in parallel.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnDiscovered is called once discovery has produced the project list.
	OnDiscovered(root string, projects int)

	// OnSolutionSkipped is called for a solution that could not be expanded during a scan.
	OnSolutionSkipped(skipped domain.SkippedSolution)

	// OnProjectStart is called before a project is purged. index is 1-based.
	OnProjectStart(index, total int, project domain.ProjectTarget)

	// OnClean is called before each clean invocation.
	OnClean(project domain.ProjectTarget, key domain.ConfigurationKey)

	// OnDelete is called after a path has been deleted.
	OnDelete(path string)

	// OnProjectComplete is called with the outcome of a project.
	OnProjectComplete(result domain.PurgeResult)

	// OnSummary is called once at the end of the run.
	OnSummary(summary domain.RunSummary)

	// OnUpdateAvailable is called when a newer release exists.
	OnUpdateAvailable(current, latest string)
}
