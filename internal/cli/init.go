package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/XpressAI/xai-tasks/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("project", false, "Write a project config in the current directory instead")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	project, _ := cmd.Flags().GetBool("project")
	force, _ := cmd.Flags().GetBool("force")

	path := config.GlobalConfigPath()
	write := config.WriteDefault
	if project {
		path = config.ProjectConfigPath()
		write = config.WriteProjectDefault
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := write(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
