// Package linear provides a synchronous, line-oriented progress reporter.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/ui/output"
	"go.trai.ch/purge/internal/ui/style"
)

// Reporter implements ports.Reporter by writing one line per event.
// Writes are serialized so projects purged in parallel never interleave within a line.
type Reporter struct {
	w      io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewReporter creates a Reporter writing to w with the profile chosen by profileFn.
func NewReporter(w io.Writer, profileFn func() termenv.Profile) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		w:      w,
		output: output.NewWithProfile(w, profileFn),
	}
}

// OnDiscovered prints how many projects were found.
func (r *Reporter) OnDiscovered(root string, projects int) {
	r.printf("Found %d project(s) in %s\n", projects, root)
}

// OnSolutionSkipped prints a solution that could not be expanded.
func (r *Reporter) OnSolutionSkipped(skipped domain.SkippedSolution) {
	symbol := r.colored(style.Cross, termenv.ANSIRed)
	r.printf("%s Skipped solution %s: %v\n", symbol, skipped.Path, skipped.Err)
}

// OnProjectStart prints the project header.
func (r *Reporter) OnProjectStart(index, total int, project domain.ProjectTarget) {
	counter := r.output.String(fmt.Sprintf("[%d/%d]", index, total)).Faint().String()
	r.printf("%s %s (%s)\n", counter, r.output.String(project.Name()).Bold().String(), project.Path)
}

// OnClean prints the configuration being cleaned.
func (r *Reporter) OnClean(project domain.ProjectTarget, key domain.ConfigurationKey) {
	prefix := r.output.String(fmt.Sprintf("[%s]", project.Name())).Faint().String()
	r.printf("  %s clean %s\n", prefix, key)
}

// OnDelete prints a deleted path.
func (r *Reporter) OnDelete(path string) {
	r.printf("  %s deleted %s\n", r.colored(style.Minus, termenv.ANSIYellow), path)
}

// OnProjectComplete prints the outcome of a project.
func (r *Reporter) OnProjectComplete(result domain.PurgeResult) {
	name := result.Project.Name()

	switch result.Outcome {
	case domain.Succeeded:
		r.printf("%s %s purged\n", r.colored(style.Check, termenv.ANSIGreen), name)
	case domain.Cancelled:
		r.printf("%s %s cancelled\n", r.colored(style.Warning, termenv.ANSIYellow), name)
	default:
		r.printf("%s %s failed: %v\n", r.colored(style.Cross, termenv.ANSIRed), name, result.Err)
	}
}

// OnSummary prints the final counts.
func (r *Reporter) OnSummary(summary domain.RunSummary) {
	symbol := r.colored(style.Check, termenv.ANSIGreen)
	if summary.Failed > 0 {
		symbol = r.colored(style.Cross, termenv.ANSIRed)
	} else if summary.Cancelled > 0 {
		symbol = r.colored(style.Warning, termenv.ANSIYellow)
	}

	r.printf("\n%s %d succeeded, %d failed, %d cancelled\n",
		symbol, summary.Succeeded, summary.Failed, summary.Cancelled)
}

// OnUpdateAvailable prints the upgrade hint.
func (r *Reporter) OnUpdateAvailable(current, latest string) {
	symbol := r.colored(style.Dot, termenv.ANSIBlue)
	r.printf("\n%s purge %s is available (current: %s). Run: dotnet tool update -g %s\n",
		symbol, latest, current, domain.PackageID)
}

func (r *Reporter) colored(s string, color termenv.Color) string {
	return r.output.String(s).Foreground(color).String()
}

func (r *Reporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.w, format, args...)
}
