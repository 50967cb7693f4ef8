package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/XpressAI/xai-tasks/internal/task"
)

var createCmd = &cobra.Command{
	Use:   "create <summary>",
	Short: "Create a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().String("details", "", "Free-text elaboration")
	createCmd.Flags().String("conversation", "", "Originating conversation context")
	createCmd.Flags().StringArray("step", nil, "Initial progress step (repeatable, in order)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	details, _ := cmd.Flags().GetString("details")
	conversation, _ := cmd.Flags().GetString("conversation")
	steps, _ := cmd.Flags().GetStringArray("step")

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := repo.Create(task.CreateParams{
		Summary:      args[0],
		Conversation: conversation,
		Details:      details,
		Steps:        steps,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created task %d\n", id)
	return nil
}
