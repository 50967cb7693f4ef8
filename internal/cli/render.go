package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/XpressAI/xai-tasks/internal/task"
)

// render writes v to stdout as JSON or YAML. Text output is handled per
// command since each has its own shape.
func render(v any, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
	return nil
}

// stateLabel collapses status + waiting into the word shown to users.
func stateLabel(status task.Status, waiting bool) string {
	if status == task.StatusCompleted {
		return "completed"
	}
	if waiting {
		return "waiting"
	}
	return "working"
}
