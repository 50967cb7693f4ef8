package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deferCmd = &cobra.Command{
	Use:   "defer <id>",
	Short: "Defer a task (mark it waiting on something external)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDefer,
}

func runDefer(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := repo.Defer(id); err != nil {
		return err
	}

	fmt.Printf("Deferred task %d\n", id)
	return nil
}
