package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/XpressAI/xai-tasks/internal/task"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	valid := map[string]int64{"1": 1, "42": 42}
	for arg, want := range valid {
		got, err := parseID(arg)
		if err != nil {
			t.Errorf("parseID(%q) failed: %v", arg, err)
		}
		if got != want {
			t.Errorf("parseID(%q) = %d, want %d", arg, got, want)
		}
	}

	for _, arg := range []string{"", "abc", "-1", "0", "1.5"} {
		if _, err := parseID(arg); err == nil {
			t.Errorf("parseID(%q) should fail", arg)
		}
	}
}

func TestStateLabel(t *testing.T) {
	t.Parallel()

	if got := stateLabel(task.StatusActive, false); got != "working" {
		t.Errorf("stateLabel(active, false) = %q", got)
	}
	if got := stateLabel(task.StatusActive, true); got != "waiting" {
		t.Errorf("stateLabel(active, true) = %q", got)
	}
	if got := stateLabel(task.StatusCompleted, false); got != "completed" {
		t.Errorf("stateLabel(completed, false) = %q", got)
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	if err := render(struct{}{}, "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

// TestCommandsEndToEnd drives the command handlers against a temp
// database the way the binary would.
func TestCommandsEndToEnd(t *testing.T) {
	dbPath = filepath.Join(t.TempDir(), "tasks.db")
	defer func() { dbPath = "" }()

	if err := runCreate(createCmd, []string{"write report"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := runStepAdd(stepAddCmd, []string{"1", "outline done"}); err != nil {
		t.Fatalf("step add failed: %v", err)
	}
	if err := runDefer(deferCmd, []string{"1"}); err != nil {
		t.Fatalf("defer failed: %v", err)
	}
	if err := runList(listCmd, nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if err := runResume(resumeCmd, []string{"1"}); err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if err := runShow(showCmd, []string{"1"}); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if err := runComplete(completeCmd, []string{"1"}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if err := runStatus(statusCmd, nil); err != nil {
		t.Fatalf("status failed: %v", err)
	}

	// Completed tasks reject further lifecycle moves; the typed error
	// reaches the command layer intact.
	err := runDefer(deferCmd, []string{"1"})
	var terr *task.InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("defer of completed task: got %v, want InvalidTransitionError", err)
	}

	if err := runDelete(deleteCmd, []string{"1"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	err = runShow(showCmd, []string{"1"})
	if !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("show after delete: got %v, want ErrNotFound", err)
	}
}
