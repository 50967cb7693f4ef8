package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Record and inspect task progress steps",
}

var stepAddCmd = &cobra.Command{
	Use:   "add <id> <text>",
	Short: "Append a progress step to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runStepAdd,
}

var stepListCmd = &cobra.Command{
	Use:   "list <id>",
	Short: "List a task's steps in order",
	Args:  cobra.ExactArgs(1),
	RunE:  runStepList,
}

func init() {
	stepCmd.AddCommand(stepAddCmd)
	stepCmd.AddCommand(stepListCmd)

	stepListCmd.Flags().String("format", "text", "Output format: text, json or yaml")
}

func runStepAdd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	repo, closeStore, err := openRepo()
	if err != nil {
		return err
	}
	defer closeStore()

	seq, err := repo.AppendStep(id, args[1])
	if err != nil {
		return err
	}

	fmt.Printf("Recorded step %d on task %d\n", seq, id)
	return nil
}

func runStepList(cmd *cobra.Command, args []string) error {
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

	steps, err := repo.Steps(id)
	if err != nil {
		return err
	}

	if format != "text" {
		return render(steps, format)
	}

	if len(steps) == 0 {
		fmt.Printf("Task %d has no steps.\n", id)
		return nil
	}

	for _, s := range steps {
		fmt.Printf("%3d. %s  (%s)\n", s.Sequence, s.Text, s.RecordedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
