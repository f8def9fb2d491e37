package domain

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DeletionPlan is the ordered list of existing absolute directories to delete for a project.
// Paths are sorted in descending lexical order so that a nested path always precedes
// any of its ancestors.
type DeletionPlan []string

// NewDeletionPlan derives the deletion plan for a project from its matrix.
// exists reports whether a path is currently present; nil means os.Stat.
func NewDeletionPlan(projectDir string, matrix Matrix, exists func(string) bool) DeletionPlan {
	if exists == nil {
		exists = pathExists
	}
	projectDir = filepath.Clean(projectDir)

	seen := make(map[string]struct{})
	var plan DeletionPlan
	for _, cell := range matrix {
		for _, name := range OutputPropertyNames {
			path := ResolveOutputPath(projectDir, cell.Outputs[name])
			// The project directory and its ancestors are never part of a plan.
			if path == "" || path == projectDir || IsWithin(path, projectDir) {
				continue
			}
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			if exists(path) {
				plan = append(plan, path)
			}
		}
	}

	slices.Sort(plan)
	slices.Reverse(plan)
	return plan
}

// ResolveOutputPath turns a property value into a clean absolute path.
// MSBuild reports Windows separators on every platform, so backslashes are normalised.
// An empty or blank value yields "".
func ResolveOutputPath(projectDir, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if filepath.Separator != '\\' {
		value = strings.ReplaceAll(value, `\`, "/")
	}
	value = filepath.FromSlash(value)
	if !filepath.IsAbs(value) {
		value = filepath.Join(projectDir, value)
	}
	return filepath.Clean(value)
}

// IsWithin reports whether path is a strict descendant of dir.
func IsWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
