// Package discovery turns a target path into the set of projects to purge.
package discovery

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Discoverer finds project files below a target, expanding solutions on the way.
type Discoverer struct {
	walker    ports.FileWalker
	solutions ports.SolutionReader
	logger    ports.Logger
}

// New creates a new Discoverer.
func New(walker ports.FileWalker, solutions ports.SolutionReader, logger ports.Logger) *Discoverer {
	return &Discoverer{
		walker:    walker,
		solutions: solutions,
		logger:    logger,
	}
}

// Discover resolves root into projects.
//
// A solution or project file named directly is used as is and recurse is ignored.
// Failing to expand such an explicit solution is fatal. A directory is scanned and
// every solution that cannot be expanded is recorded in Discovery.Skipped instead.
// The projects are deduplicated by path and sorted.
func (d *Discoverer) Discover(ctx context.Context, root string, recurse bool, exclude []string) (*domain.Discovery, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrTargetNotFound, err.Error()), "path", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "no such file or directory"), "path", abs)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrTargetNotFound, err.Error()), "path", abs)
	}

	c := newCollector()
	if info.IsDir() {
		if err := d.scan(ctx, abs, recurse, exclude, c); err != nil {
			return nil, err
		}
		return c.result(), nil
	}

	if recurse {
		d.logger.Warn("--recurse has no effect when the target is a file")
	}

	switch {
	case domain.IsSolutionFile(abs):
		members, err := d.solutions.Parse(abs)
		if err != nil {
			return nil, err
		}
		d.addMembers(abs, members, c)
	case domain.IsProjectFile(abs):
		c.add(abs)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedTarget, "unknown file type "+filepath.Ext(abs)), "path", abs)
	}

	return c.result(), nil
}

func (d *Discoverer) scan(ctx context.Context, dir string, recurse bool, exclude []string, c *collector) error {
	for path, walkErr := range d.walker.WalkFiles(dir, recurse, exclude) {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "discovery interrupted")
		}

		if walkErr != nil {
			d.logger.Warn(zerr.Wrap(walkErr, domain.ErrDiscoveryFailed.Error()).Error())
			continue
		}

		switch {
		case domain.IsProjectFile(path):
			c.add(path)
		case domain.IsSolutionFile(path):
			members, err := d.solutions.Parse(path)
			if err != nil {
				c.skip(path, err)
				continue
			}
			d.addMembers(path, members, c)
		}
	}

	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "discovery interrupted")
	}
	return nil
}

// addMembers adds the projects of a solution, leaving out members missing from disk.
func (d *Discoverer) addMembers(solutionPath string, members []string, c *collector) {
	for _, member := range members {
		if _, err := os.Stat(member); err != nil {
			d.logger.Warn("solution " + filepath.Base(solutionPath) + " references missing project " + member)
			continue
		}
		c.add(member)
	}
}

type collector struct {
	seen     map[string]struct{}
	projects []domain.ProjectTarget
	skipped  []domain.SkippedSolution
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

func (c *collector) add(path string) {
	target, err := domain.NewProjectTarget(path)
	if err != nil {
		return
	}
	if _, dup := c.seen[target.Path]; dup {
		return
	}
	c.seen[target.Path] = struct{}{}
	c.projects = append(c.projects, target)
}

func (c *collector) skip(path string, err error) {
	c.skipped = append(c.skipped, domain.SkippedSolution{Path: path, Err: err})
}

func (c *collector) result() *domain.Discovery {
	sort.Slice(c.projects, func(i, j int) bool {
		return c.projects[i].Path < c.projects[j].Path
	})
	return &domain.Discovery{Projects: c.projects, Skipped: c.skipped}
}
