package config

// SettingsFile represents the structure of the .purge.yaml settings file.
type SettingsFile struct {
	Exclude  []string `yaml:"exclude"`
	Parallel *int     `yaml:"parallel"`
}
