package domain

import "fmt"

// Outcome is the result category of purging one project.
type Outcome uint8

const (
	// Succeeded means every step of the purge completed.
	Succeeded Outcome = iota
	// Failed means a step of the purge returned an error.
	Failed
	// Cancelled means the run was cancelled before or while purging the project.
	Cancelled
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// PurgeResult is the per-project outcome reported to the orchestrator.
type PurgeResult struct {
	Project ProjectTarget
	Outcome Outcome
	Err     error
}

// RunSummary aggregates the outcomes of a run.
type RunSummary struct {
	Succeeded int
	Failed    int
	Cancelled int
}

// Add counts one outcome.
func (s *RunSummary) Add(o Outcome) {
	switch o {
	case Succeeded:
		s.Succeeded++
	case Failed:
		s.Failed++
	case Cancelled:
		s.Cancelled++
	}
}

// Total returns the number of outcomes counted.
func (s RunSummary) Total() int {
	return s.Succeeded + s.Failed + s.Cancelled
}

// Err returns the run-level error for the summary, or nil when every project succeeded.
// Failures take precedence over cancellation.
func (s RunSummary) Err() error {
	switch {
	case s.Failed > 0:
		return ErrPurgeFailed
	case s.Cancelled > 0:
		return ErrRunCancelled
	default:
		return nil
	}
}

// SkippedSolution records a solution found during a directory scan that could not be expanded.
type SkippedSolution struct {
	Path string
	Err  error
}

// Discovery is the output of project discovery.
type Discovery struct {
	Projects []ProjectTarget
	Skipped  []SkippedSolution
}

// Settings holds the options read from the settings file.
type Settings struct {
	// Exclude lists extra directory names skipped during a recursive scan.
	Exclude []string
	// Parallel is the number of projects purged concurrently.
	Parallel int
}

// DefaultSettings returns the settings used when no settings file is present.
func DefaultSettings() Settings {
	return Settings{Parallel: 1}
}
