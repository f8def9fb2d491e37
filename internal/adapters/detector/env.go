// Package detector inspects the process environment to choose how output is rendered.
package detector

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/purge/internal/ui/output"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// IsCI reports whether the CI environment variable marks a CI run.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ProfileFor returns the color profile selector for output written to w.
// Terminals get basic ANSI colors unless NO_COLOR is set. Pipes and files stay plain.
func ProfileFor(w io.Writer) func() termenv.Profile {
	if IsTerminal(w) || IsCI() {
		return output.ColorProfileANSI
	}
	return output.PlainProfile
}
