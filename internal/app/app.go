// Package app implements the application layer for purge.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"go.trai.ch/purge/internal/build"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/purge/internal/engine/discovery"
	"go.trai.ch/purge/internal/engine/matrix"
	"go.trai.ch/purge/internal/engine/purger"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	discoverer   *discovery.Discoverer
	resolver     *matrix.Resolver
	purger       *purger.Purger
	reporter     ports.Reporter
	versions     ports.VersionChecker
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	discoverer *discovery.Discoverer,
	resolver *matrix.Resolver,
	purgr *purger.Purger,
	reporter ports.Reporter,
	versions ports.VersionChecker,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		discoverer:   discoverer,
		resolver:     resolver,
		purger:       purgr,
		reporter:     reporter,
		versions:     versions,
		tracer:       tracer,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Target is the directory, project or solution to purge. Empty means the working directory.
	Target string
	// Recurse scans subdirectories when Target is a directory.
	Recurse bool
	// NoClean skips the clean step and only deletes output directories.
	NoClean bool
	// IDEFiles also removes the IDE state directory and per-user settings files.
	IDEFiles bool
	// Parallel overrides the settings file when greater than zero.
	Parallel int
	// Verbose enables debug logging.
	Verbose bool
	// SkipUpdateCheck disables the release lookup.
	SkipUpdateCheck bool
}

// Run discovers the projects under the target and purges each of them.
// It returns domain.ErrPurgeFailed when any project failed and domain.ErrRunCancelled
// when the run was interrupted.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	a.logger.SetVerbose(opts.Verbose)

	checkCtx, cancelCheck := context.WithCancel(ctx)
	defer cancelCheck()
	updates := a.checkForUpdate(checkCtx, opts.SkipUpdateCheck)

	// 1. Resolve the target and load settings
	target := opts.Target
	if target == "" {
		target = "."
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve target"), "target", target)
	}

	settings, err := a.configLoader.Load(settingsDir(root))
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	parallel := settings.Parallel
	if opts.Parallel > 0 {
		parallel = opts.Parallel
	}
	if parallel < 1 {
		parallel = 1
	}

	// 2. Discover projects
	found, err := a.discoverer.Discover(ctx, root, opts.Recurse, settings.Exclude)
	if err != nil {
		return err
	}

	a.reporter.OnDiscovered(root, len(found.Projects))

	summary := &runState{}
	for _, skipped := range found.Skipped {
		a.reporter.OnSolutionSkipped(skipped)
		summary.add(domain.Failed)
	}

	// 3. Purge projects
	purgeOpts := purger.Options{NoClean: opts.NoClean, IDEFiles: opts.IDEFiles}
	total := len(found.Projects)

	var g errgroup.Group
	g.SetLimit(parallel)
	for i, project := range found.Projects {
		if ctx.Err() != nil {
			a.complete(summary, domain.PurgeResult{Project: project, Outcome: domain.Cancelled, Err: ctx.Err()})
			continue
		}
		g.Go(func() error {
			a.complete(summary, a.purgeProject(ctx, i+1, total, project, purgeOpts))
			return nil
		})
	}
	_ = g.Wait()

	// 4. Report
	result := summary.snapshot()
	a.reporter.OnSummary(result)

	if latest, ok := <-updates; ok {
		a.reporter.OnUpdateAvailable(build.Version, latest)
	}

	return result.Err()
}

func (a *App) purgeProject(
	ctx context.Context,
	index, total int,
	project domain.ProjectTarget,
	opts purger.Options,
) domain.PurgeResult {
	if err := ctx.Err(); err != nil {
		return domain.PurgeResult{Project: project, Outcome: domain.Cancelled, Err: err}
	}

	a.reporter.OnProjectStart(index, total, project)

	ctx, span := a.tracer.Start(ctx, "purge "+project.Name())
	defer span.End()
	span.SetAttribute(ports.SpanAttrProject, project.Name())

	err := a.resolveAndPurge(ctx, project, opts)
	if err != nil {
		span.RecordError(err)
	}

	return domain.PurgeResult{Project: project, Outcome: classify(err), Err: err}
}

func (a *App) resolveAndPurge(ctx context.Context, project domain.ProjectTarget, opts purger.Options) error {
	resolveCtx, span := a.tracer.Start(ctx, "resolve")
	span.SetAttribute(ports.SpanAttrProject, project.Name())
	cells, err := a.resolver.Resolve(resolveCtx, project)
	if err != nil {
		span.RecordError(err)
		span.End()
		return err
	}
	span.End()

	a.logger.Debug(project.Name() + ": " + pluralize(len(cells), "configuration"))

	return a.purger.Purge(ctx, project, cells, opts)
}

func (a *App) complete(state *runState, result domain.PurgeResult) {
	state.add(result.Outcome)
	a.reporter.OnProjectComplete(result)
}

// checkForUpdate starts the release lookup in the background.
// The returned channel yields the newer version, if any, and is always closed.
func (a *App) checkForUpdate(ctx context.Context, skip bool) <-chan string {
	updates := make(chan string, 1)
	if skip || a.versions == nil {
		close(updates)
		return updates
	}

	go func() {
		defer close(updates)
		latest, err := a.versions.Latest(ctx, build.Version)
		if err != nil {
			a.logger.Debug("update check failed: " + err.Error())
			return
		}
		if latest != "" {
			updates <- latest
		}
	}()

	return updates
}

func classify(err error) domain.Outcome {
	switch {
	case err == nil:
		return domain.Succeeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.Cancelled
	default:
		return domain.Failed
	}
}

// settingsDir returns the directory the settings lookup starts from.
func settingsDir(root string) string {
	info, err := os.Stat(root)
	if err == nil && !info.IsDir() {
		return filepath.Dir(root)
	}
	return root
}

type runState struct {
	mu      sync.Mutex
	summary domain.RunSummary
}

func (s *runState) add(o domain.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary.Add(o)
}

func (s *runState) snapshot() domain.RunSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
