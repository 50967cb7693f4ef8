package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show task tracker totals",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	stats, err := repo.CountStats()
	if err != nil {
		return err
	}

	fmt.Println("Task Tracker Status")
	fmt.Printf("  Working:   %d\n", stats.Working)
	fmt.Printf("  Waiting:   %d\n", stats.Waiting)
	fmt.Printf("  Completed: %d\n", stats.Completed)
	fmt.Printf("  Steps:     %d\n", stats.Steps)
	return nil
}
