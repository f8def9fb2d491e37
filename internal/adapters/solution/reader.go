// Package solution expands solution files into the project files they reference.
package solution

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser extracts the raw project paths listed in a solution document.
// Paths are returned as written, relative to the solution directory.
type Parser func(data []byte) ([]string, error)

// Reader implements ports.SolutionReader with one Parser per file extension.
type Reader struct {
	parsers map[string]Parser
}

// NewReader creates a Reader that understands .sln and .slnx files.
func NewReader() *Reader {
	r := &Reader{parsers: make(map[string]Parser)}
	r.Register(".sln", ParseSLN)
	r.Register(".slnx", ParseSLNX)
	return r
}

// Register adds or replaces the parser for ext.
func (r *Reader) Register(ext string, parser Parser) {
	r.parsers[strings.ToLower(ext)] = parser
}

// Parse returns the absolute paths of the projects referenced by solutionPath,
// in document order and without duplicates.
func (r *Reader) Parse(solutionPath string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(solutionPath))
	parser, ok := r.parsers[ext]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedSolutionFormat, "no parser for "+ext), "path", solutionPath)
	}

	data, err := os.ReadFile(solutionPath) //nolint:gosec // path comes from discovery
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrSolutionParseFailed, err.Error()), "path", solutionPath)
		return nil, wrapped
	}

	raw, err := parser(data)
	if err != nil {
		return nil, zerr.With(err, "path", solutionPath)
	}

	dir := filepath.Dir(solutionPath)
	seen := make(map[string]struct{}, len(raw))
	projects := make([]string, 0, len(raw))
	for _, p := range raw {
		abs := resolveMember(dir, p)
		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}
		projects = append(projects, abs)
	}
	return projects, nil
}

// resolveMember turns a solution-relative path, written with either separator, into an absolute path.
func resolveMember(dir, member string) string {
	if runtime.GOOS != "windows" {
		member = strings.ReplaceAll(member, `\`, "/")
	}
	member = filepath.FromSlash(member)
	if !filepath.IsAbs(member) {
		member = filepath.Join(dir, member)
	}
	return filepath.Clean(member)
}
