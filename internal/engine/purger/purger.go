// Package purger cleans a project and deletes its build output.
package purger

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options selects the optional steps of a purge.
type Options struct {
	// NoClean skips the clean invocations.
	NoClean bool
	// IDEFiles also removes the IDE state directory and the per-user settings file.
	IDEFiles bool
}

// Purger executes the purge of a single project.
type Purger struct {
	tool     ports.BuildTool
	reporter ports.Reporter
	tracer   ports.Tracer
}

// New creates a new Purger.
func New(tool ports.BuildTool, reporter ports.Reporter, tracer ports.Tracer) *Purger {
	return &Purger{
		tool:     tool,
		reporter: reporter,
		tracer:   tracer,
	}
}

// Purge cleans every key of matrix in order, then deletes the output directories of the
// project deepest first, pruning parents left empty inside the project directory.
// A clean failure stops the project before anything is deleted.
func (p *Purger) Purge(ctx context.Context, project domain.ProjectTarget, matrix domain.Matrix, opts Options) error {
	if !opts.NoClean {
		if err := p.clean(ctx, project, matrix); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	_, span := p.tracer.Start(ctx, "delete")
	defer span.End()
	span.SetAttribute(ports.SpanAttrProject, project.Name())

	plan := domain.NewDeletionPlan(project.Dir, matrix, nil)
	span.SetAttribute("planned", len(plan))

	for _, path := range plan {
		if err := p.deleteAndPrune(project.Dir, path); err != nil {
			span.RecordError(err)
			return err
		}
	}

	if opts.IDEFiles {
		for _, path := range []string{project.IDEStatePath(), project.UserSettingsPath()} {
			if err := p.delete(path); err != nil {
				span.RecordError(err)
				return err
			}
		}
	}

	return nil
}

func (p *Purger) clean(ctx context.Context, project domain.ProjectTarget, matrix domain.Matrix) error {
	ctx, span := p.tracer.Start(ctx, "clean")
	defer span.End()
	span.SetAttribute(ports.SpanAttrProject, project.Name())
	span.SetAttribute("keys", len(matrix))

	for _, key := range matrix.Keys() {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.reporter.OnClean(project, key)
		if err := p.tool.Clean(ctx, project.Path, key.CleanArgs()); err != nil {
			span.RecordError(err)
			return zerr.With(err, "key", key.String())
		}
	}
	return nil
}

// deleteAndPrune removes path, then each parent that is left empty, stopping at projectDir.
// A path that has already disappeared is skipped.
func (p *Purger) deleteAndPrune(projectDir, path string) error {
	if err := p.delete(path); err != nil {
		return err
	}

	for parent := filepath.Dir(path); domain.IsWithin(projectDir, parent); parent = filepath.Dir(parent) {
		entries, err := os.ReadDir(parent)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return zerr.With(zerr.Wrap(domain.ErrDeleteFailed, err.Error()), "path", parent)
		}
		if len(entries) > 0 {
			return nil
		}

		if err := os.Remove(parent); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrDeleteFailed, err.Error()), "path", parent)
		}
		p.reporter.OnDelete(parent)
	}
	return nil
}

// delete removes path if it exists and reports it.
func (p *Purger) delete(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrDeleteFailed, err.Error()), "path", path)
	}

	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDeleteFailed, err.Error()), "path", path)
	}
	p.reporter.OnDelete(path)
	return nil
}
