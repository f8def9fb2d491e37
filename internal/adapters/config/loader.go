// Package config provides the loader for the optional .purge.yaml settings file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load looks for the settings file in dir and then in each parent directory.
// The first file found wins. Without a file the defaults are returned.
func (l *Loader) Load(dir string) (*domain.Settings, error) {
	path, found := findSettings(dir)
	if !found {
		settings := domain.DefaultSettings()
		return &settings, nil
	}

	l.Logger.Debug("using settings from " + path)

	var file SettingsFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	settings := domain.DefaultSettings()
	settings.Exclude = file.Exclude
	if file.Parallel != nil {
		if *file.Parallel < 1 {
			err := zerr.Wrap(domain.ErrInvalidParallelism, "invalid settings file")
			return nil, zerr.With(zerr.With(err, "path", path), "parallel", *file.Parallel)
		}
		settings.Parallel = *file.Parallel
	}

	return &settings, nil
}

func findSettings(dir string) (string, bool) {
	current := dir
	for {
		candidate := filepath.Join(current, domain.SettingsFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is discovered from the target directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}
