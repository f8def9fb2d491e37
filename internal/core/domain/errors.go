package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetNotFound is returned when the path given to purge does not exist.
	ErrTargetNotFound = zerr.New("target path not found")

	// ErrUnsupportedTarget is returned when the target is a file that is neither a project nor a solution.
	ErrUnsupportedTarget = zerr.New("target is not a project or solution file")

	// ErrUnsupportedSolutionFormat is returned when no solution parser is registered for a file extension.
	ErrUnsupportedSolutionFormat = zerr.New("unsupported solution format")

	// ErrSolutionParseFailed is returned when a solution file cannot be read or parsed.
	ErrSolutionParseFailed = zerr.New("failed to parse solution file")

	// ErrDiscoveryFailed is returned when enumerating candidate files fails.
	ErrDiscoveryFailed = zerr.New("failed to discover projects")

	// ErrEvaluationFailed is returned when the build tool exits with a non-zero status while evaluating properties.
	ErrEvaluationFailed = zerr.New("property evaluation failed")

	// ErrEvaluationParseFailed is returned when the build tool output cannot be parsed.
	ErrEvaluationParseFailed = zerr.New("failed to parse property evaluation output")

	// ErrBuildToolStartFailed is returned when the build tool process cannot be started.
	ErrBuildToolStartFailed = zerr.New("failed to start build tool")

	// ErrCleanFailed is returned when the build tool exits with a non-zero status while cleaning.
	ErrCleanFailed = zerr.New("clean failed")

	// ErrDeleteFailed is returned when an output directory or IDE file cannot be removed.
	ErrDeleteFailed = zerr.New("failed to delete path")

	// ErrPurgeFailed is returned when at least one project could not be purged.
	ErrPurgeFailed = zerr.New("one or more projects failed to purge")

	// ErrRunCancelled is returned when the run was cancelled before all projects were purged.
	ErrRunCancelled = zerr.New("purge cancelled")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidParallelism is returned when a non-positive parallelism is configured.
	ErrInvalidParallelism = zerr.New("parallel must be at least 1")

	// ErrVersionCheckFailed is returned when the package index cannot be queried.
	ErrVersionCheckFailed = zerr.New("failed to query package index")

	// ErrVersionParseFailed is returned when the package index response cannot be parsed.
	ErrVersionParseFailed = zerr.New("failed to parse package index response")
)
