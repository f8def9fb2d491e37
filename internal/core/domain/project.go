package domain

import (
	"path/filepath"
	"strings"
)

// ProjectTarget identifies one project file to purge.
type ProjectTarget struct {
	// Path is the absolute path of the project file.
	Path string
	// Dir is the directory containing the project file.
	Dir string
}

// NewProjectTarget creates a ProjectTarget from a project file path.
// Relative paths are made absolute against the current working directory.
func NewProjectTarget(path string) (ProjectTarget, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ProjectTarget{}, err
	}
	return ProjectTarget{Path: abs, Dir: filepath.Dir(abs)}, nil
}

// Name returns the project file name without its extension.
func (p ProjectTarget) Name() string {
	base := filepath.Base(p.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// UserSettingsPath returns the path of the per-user settings file next to the project.
func (p ProjectTarget) UserSettingsPath() string {
	return p.Path + UserSettingsSuffix
}

// IDEStatePath returns the path of the IDE state directory inside the project directory.
func (p ProjectTarget) IDEStatePath() string {
	return filepath.Join(p.Dir, IDEStateDirName)
}

// BuildProjectReferencesOff is passed to clean so that only the project itself is cleaned.
const BuildProjectReferencesOff = "-p:BuildProjectReferences=false"

// ConfigurationKey identifies one build matrix cell of a project.
// An empty TargetFramework means the project is not multi-targeted.
type ConfigurationKey struct {
	Configuration   string
	TargetFramework string
}

// String returns a human-readable representation such as "Debug|net8.0".
func (k ConfigurationKey) String() string {
	if k.TargetFramework == "" {
		return k.Configuration
	}
	return k.Configuration + "|" + k.TargetFramework
}

// IsZero reports whether the key carries no overrides.
func (k ConfigurationKey) IsZero() bool {
	return k.Configuration == "" && k.TargetFramework == ""
}

// CleanArgs reconstructs the clean arguments for this key.
func (k ConfigurationKey) CleanArgs() []string {
	args := make([]string, 0, 5)
	if k.Configuration != "" {
		args = append(args, "--configuration", k.Configuration)
	}
	if k.TargetFramework != "" {
		args = append(args, "--framework", k.TargetFramework)
	}
	return append(args, BuildProjectReferencesOff)
}

// Property names evaluated through the build tool.
const (
	PropConfigurations             = "Configurations"
	PropTargetFrameworks           = "TargetFrameworks"
	PropBaseIntermediateOutputPath = "BaseIntermediateOutputPath"
	PropBaseOutputPath             = "BaseOutputPath"
	PropPackageOutputPath          = "PackageOutputPath"
	PropPublishDir                 = "PublishDir"
)

// OutputPropertyNames lists the properties whose values are output directories.
var OutputPropertyNames = []string{
	PropBaseIntermediateOutputPath,
	PropBaseOutputPath,
	PropPackageOutputPath,
	PropPublishDir,
}

// DefaultConfigurations is used when a project reports no configurations.
var DefaultConfigurations = []string{"Debug", "Release"}

// OutputProperties maps an output property name to the directory resolved for one key.
type OutputProperties map[string]string

// MatrixCell is one ConfigurationKey together with its resolved output directories.
type MatrixCell struct {
	Key     ConfigurationKey
	Outputs OutputProperties
}

// Matrix is the ordered list of cells of a project, configuration-major.
type Matrix []MatrixCell

// Keys returns the keys of the matrix in order.
func (m Matrix) Keys() []ConfigurationKey {
	keys := make([]ConfigurationKey, len(m))
	for i, c := range m {
		keys[i] = c.Key
	}
	return keys
}

// SplitPropertyList splits a semicolon-delimited MSBuild list, trimming entries and
// dropping empty ones.
func SplitPropertyList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
