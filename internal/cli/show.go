package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show full task detail including its steps",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().String("format", "text", "Output format: text, json or yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	detail, err := repo.Get(id)
	if err != nil {
		return err
	}

	if format != "text" {
		return render(detail, format)
	}

	fmt.Printf("Task %d: %s\n", detail.ID, detail.Summary)
	fmt.Printf("  State:   %s\n", stateLabel(detail.Status, detail.Waiting))
	fmt.Printf("  Created: %s\n", detail.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  Updated: %s\n", detail.UpdatedAt.Local().Format("2006-01-02 15:04"))
	if detail.Details != "" {
		fmt.Printf("  Details: %s\n", detail.Details)
	}
	if detail.Conversation != "" {
		fmt.Printf("  Conversation: %s\n", detail.Conversation)
	}

	if len(detail.Steps) == 0 {
		fmt.Println("  No steps recorded.")
		return nil
	}

	fmt.Printf("  Steps (%d):\n", len(detail.Steps))
	for _, s := range detail.Steps {
		fmt.Printf("    %3d. %s  (%s)\n", s.Sequence, s.Text, s.RecordedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
