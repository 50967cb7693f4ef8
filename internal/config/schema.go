package config

// Config represents the full xai-tasks configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Database is the SQLite file holding the task tracker state.
	// A leading ~ is expanded when the store is opened.
	Database string `yaml:"database" mapstructure:"database"`
}
