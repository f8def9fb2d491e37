package solution

import (
	"bytes"
	"regexp"
	"strings"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/zerr"
)

// solutionFolderType is the project type GUID of virtual solution folders.
const solutionFolderType = "2150E333-8FDC-42A3-9474-1A3956D46DE8"

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}

	// Project("{TYPE}") = "Name", "relative\path.csproj", "{GUID}"
	slnProjectLine = regexp.MustCompile(`^Project\("\{([^}]*)\}"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"`)

	slnHeader = "Microsoft Visual Studio Solution File"
)

// ParseSLN reads the classic text solution format.
func ParseSLN(data []byte) ([]string, error) {
	text := string(bytes.TrimPrefix(data, utf8BOM))
	if !strings.Contains(text, slnHeader) {
		return nil, zerr.Wrap(domain.ErrSolutionParseFailed, "missing solution file header")
	}

	var projects []string
	for _, line := range strings.Split(text, "\n") {
		m := slnProjectLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if strings.EqualFold(m[1], solutionFolderType) {
			continue
		}
		if !domain.IsProjectFile(m[3]) {
			continue
		}
		projects = append(projects, m[3])
	}
	return projects, nil
}
