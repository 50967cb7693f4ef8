package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := repo.Complete(id); err != nil {
		return err
	}

	fmt.Printf("Completed task %d\n", id)
	return nil
}
