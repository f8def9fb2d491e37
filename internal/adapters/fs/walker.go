// Package fs provides the file system walker used to find projects and solutions.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker implements ports.FileWalker on top of filepath.WalkDir.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the regular files of root in lexical order.
// Without recurse only the top level is listed. With recurse the whole subtree is visited,
// skipping domain.DefaultExcludes and any directory whose name matches one of ignores.
// An unreadable sub-directory yields an error and the walk continues with its siblings.
func (w *Walker) WalkFiles(root string, recurse bool, ignores []string) iter.Seq2[string, error] {
	if !recurse {
		return w.topLevel(root)
	}

	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				wrapped := zerr.With(zerr.Wrap(err, "failed to read directory"), "path", path)
				if !yield("", wrapped) {
					return filepath.SkipAll
				}
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != root && shouldSkipDir(d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) topLevel(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		entries, err := os.ReadDir(root)
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, "failed to read directory"), "path", root))
			return
		}

		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if !yield(filepath.Join(root, entry.Name()), nil) {
				return
			}
		}
	}
}

// shouldSkipDir reports whether a directory name is excluded from a recursive scan.
func shouldSkipDir(name string, ignores []string) bool {
	for _, skip := range domain.DefaultExcludes {
		if name == skip {
			return true
		}
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
