package ports

import "go.trai.ch/purge/internal/core/domain"

// ConfigLoader defines the interface for loading the optional settings file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load looks for the settings file in dir and its parents.
	// It returns domain.DefaultSettings when no file is found.
	Load(dir string) (*domain.Settings, error)
}
