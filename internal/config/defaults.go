package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  "1",
		Database: "~/.xai-tasks/tasks.db",
	}
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# xai-tasks Global Configuration
version: "1"

# SQLite database holding the task tracker state.
# A project config (./.xai-tasks/config.yaml) may override this to keep
# tasks next to the project instead.
database: ~/.xai-tasks/tasks.db
`
	return os.WriteFile(path, []byte(content), 0644)
}

// WriteProjectDefault writes the default project configuration to a file
func WriteProjectDefault(path string) error {
	content := `# xai-tasks Project Configuration
version: "1"

# Uncomment to keep this project's tasks in a local database.
# database: .xai-tasks/tasks.db
`
	return os.WriteFile(path, []byte(content), 0644)
}
