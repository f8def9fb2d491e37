// Package matrix resolves the configuration × target-framework matrix of a project.
package matrix

import (
	"context"
	"runtime"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver evaluates a project's configurations, frameworks and output directories.
type Resolver struct {
	tool  ports.BuildTool
	limit int
}

// New creates a Resolver that runs up to runtime.NumCPU evaluations at once.
func New(tool ports.BuildTool) *Resolver {
	return NewWithLimit(tool, runtime.NumCPU())
}

// NewWithLimit creates a Resolver running at most limit evaluations concurrently.
func NewWithLimit(tool ports.BuildTool, limit int) *Resolver {
	if limit < 1 {
		limit = 1
	}
	return &Resolver{tool: tool, limit: limit}
}

// Resolve builds the matrix of project in configuration-major, framework-minor order.
//
// A project listing no configurations gets Debug and Release. A project listing more than
// one framework is multi-targeted and gets one key per configuration and framework;
// otherwise each configuration gets a single key without a framework.
func (r *Resolver) Resolve(ctx context.Context, project domain.ProjectTarget) (domain.Matrix, error) {
	configurations, err := r.list(ctx, project, domain.PropConfigurations)
	if err != nil {
		return nil, err
	}
	if len(configurations) == 0 {
		configurations = domain.DefaultConfigurations
	}

	frameworks, err := r.list(ctx, project, domain.PropTargetFrameworks)
	if err != nil {
		return nil, err
	}

	keys := Keys(configurations, frameworks)
	matrix := make(domain.Matrix, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, key := range keys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outputs, err := r.tool.Evaluate(gctx, project.Path, key, domain.OutputPropertyNames)
			if err != nil {
				return zerr.With(err, "key", key.String())
			}
			matrix[i] = domain.MatrixCell{Key: key, Outputs: domain.OutputProperties(outputs)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matrix, nil
}

// Keys expands configurations and frameworks into matrix keys.
func Keys(configurations, frameworks []string) []domain.ConfigurationKey {
	multiTargeted := len(frameworks) > 1

	size := len(configurations)
	if multiTargeted {
		size *= len(frameworks)
	}

	keys := make([]domain.ConfigurationKey, 0, size)
	for _, c := range configurations {
		if !multiTargeted {
			keys = append(keys, domain.ConfigurationKey{Configuration: c})
			continue
		}
		for _, f := range frameworks {
			keys = append(keys, domain.ConfigurationKey{Configuration: c, TargetFramework: f})
		}
	}
	return keys
}

func (r *Resolver) list(ctx context.Context, project domain.ProjectTarget, property string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values, err := r.tool.Evaluate(ctx, project.Path, domain.ConfigurationKey{}, []string{property})
	if err != nil {
		return nil, zerr.With(err, "property", property)
	}
	return domain.SplitPropertyList(values[property]), nil
}
