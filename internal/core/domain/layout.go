package domain

import (
	"path/filepath"
	"strings"
)

const (
	// PackageID is the NuGet package id the tool is published under.
	PackageID = "dotnet-purge"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = ".purge.yaml"

	// IDEStateDirName is the hidden directory Visual Studio keeps next to a project.
	IDEStateDirName = ".vs"

	// UserSettingsSuffix is appended to a project file name to form its per-user settings file.
	UserSettingsSuffix = ".user"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// SolutionExtensions lists the file extensions recognised as solutions.
var SolutionExtensions = []string{".sln", ".slnx"}

// ProjectExtensions lists the file extensions recognised as projects.
var ProjectExtensions = []string{".csproj", ".fsproj", ".vbproj", ".esproj"}

// DefaultExcludes lists directory names never descended into during a recursive scan.
var DefaultExcludes = []string{".git", ".jj", IDEStateDirName, "node_modules"}

// IsSolutionFile reports whether path has a solution extension.
func IsSolutionFile(path string) bool {
	return hasExtension(path, SolutionExtensions)
}

// IsProjectFile reports whether path has a project extension.
func IsProjectFile(path string) bool {
	return hasExtension(path, ProjectExtensions)
}

func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
