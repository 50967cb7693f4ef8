package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task and all its steps (irreversible)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := repo.Delete(id); err != nil {
		return err
	}

	fmt.Printf("Deleted task %d\n", id)
	return nil
}
