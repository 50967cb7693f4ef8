package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/XpressAI/xai-tasks/internal/config"
	"github.com/XpressAI/xai-tasks/internal/store"
	"github.com/XpressAI/xai-tasks/internal/task"
)

var (
	verbose bool
	dbPath  string
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "xai-tasks",
		Short: "xai-tasks - persistent task tracking for a single agent",
		Long: `xai-tasks stores units of work with free-text context, a lifecycle status
and an append-only ledger of progress steps in a local SQLite database.

It is built for one agent process issuing one operation at a time: create
a task, record steps as work happens, defer it while blocked, resume it,
and complete or delete it when done.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Task database file (overrides config)")
}

// Execute runs the root command
func Execute(version string) error {
	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deferCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// openRepo opens the configured store and returns the repository plus a
// close function the command must defer.
func openRepo() (*task.Repo, func(), error) {
	path := dbPath
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		path = cfg.Database
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "using database %s\n", path)
	}

	s, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return task.NewRepo(s), func() { s.Close() }, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
