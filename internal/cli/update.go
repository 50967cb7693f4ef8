package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XpressAI/xai-tasks/internal/task"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task's summary, details or conversation",
	Long: `Update changes only the fields whose flags are supplied; everything else
is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().String("summary", "", "New summary (must not be empty)")
	updateCmd.Flags().String("details", "", "New details")
	updateCmd.Flags().String("conversation", "", "New conversation context")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	// Only flags the caller actually set become part of the update.
	var u task.Update
	if cmd.Flags().Changed("summary") {
		v, _ := cmd.Flags().GetString("summary")
		u.Summary = &v
	}
	if cmd.Flags().Changed("details") {
		v, _ := cmd.Flags().GetString("details")
		u.Details = &v
	}
	if cmd.Flags().Changed("conversation") {
		v, _ := cmd.Flags().GetString("conversation")
		u.Conversation = &v
	}

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := repo.Update(id, u); err != nil {
		return err
	}

	fmt.Printf("Updated task %d\n", id)
	return nil
}
