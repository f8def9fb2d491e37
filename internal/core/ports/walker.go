package ports

import "iter"

// FileWalker enumerates candidate files below a directory.
type FileWalker interface {
	// WalkFiles yields the files of root. Sub-directories are only visited when recurse
	// is set; directories whose name matches one of ignores are skipped.
	WalkFiles(root string, recurse bool, ignores []string) iter.Seq2[string, error]
}
