package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active tasks (working and waiting), oldest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().String("format", "text", "Output format: text, json or yaml")
}

func runList(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	tasks, err := repo.ListActive()
	if err != nil {
		return err
	}

	if format != "text" {
		return render(tasks, format)
	}

	if len(tasks) == 0 {
		fmt.Println("No active tasks.")
		return nil
	}

	fmt.Printf("Active Tasks (%d):\n\n", len(tasks))
	for _, t := range tasks {
		fmt.Printf("  %4d  %-9s  %3d steps  %s  %s\n",
			t.ID,
			stateLabel(t.Status, t.Waiting),
			t.StepCount,
			t.CreatedAt.Local().Format("2006-01-02 15:04"),
			t.Summary)
	}
	return nil
}
