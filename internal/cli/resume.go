package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Resume a deferred task",
	Args:  cobra.ExactArgs(1),
	RunE:  runResume,
}

func runResume(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := repo.Resume(id); err != nil {
		return err
	}

	fmt.Printf("Resumed task %d\n", id)
	return nil
}
