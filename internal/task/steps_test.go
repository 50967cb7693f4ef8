package task

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestAppendAssignsSequentialNumbers(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	id := mustCreate(t, repo, CreateParams{Summary: "write report"})

	for i := 1; i <= 5; i++ {
		seq, err := repo.AppendStep(id, fmt.Sprintf("step %d", i))
		if err != nil {
			t.Fatalf("AppendStep #%d failed: %v", i, err)
		}
		if seq != i {
			t.Errorf("AppendStep #%d: sequence = %d, want %d", i, seq, i)
		}
	}

	steps, err := repo.Steps(id)
	if err != nil {
		t.Fatalf("Steps failed: %v", err)
	}
	if len(steps) != 5 {
		t.Fatalf("Expected 5 steps, got %d", len(steps))
	}
	for i, s := range steps {
		if s.Sequence != i+1 {
			t.Errorf("Position %d: sequence = %d, want %d", i, s.Sequence, i+1)
		}
	}
}

func TestAppendSurvivesInterleavedOperations(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	id := mustCreate(t, repo, CreateParams{Summary: "write report"})

	// Other mutations on the task must not disturb the ledger.
	if _, err := repo.AppendStep(id, "one"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Defer(id); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.AppendStep(id, "two"); err != nil {
		t.Fatal(err)
	}
	details := "now with details"
	if err := repo.Update(id, Update{Details: &details}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Resume(id); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.AppendStep(id, "three"); err != nil {
		t.Fatal(err)
	}

	steps, err := repo.Steps(id)
	if err != nil {
		t.Fatalf("Steps failed: %v", err)
	}
	wantTexts := []string{"one", "two", "three"}
	if len(steps) != len(wantTexts) {
		t.Fatalf("Expected %d steps, got %d", len(wantTexts), len(steps))
	}
	for i, s := range steps {
		if s.Sequence != i+1 || s.Text != wantTexts[i] {
			t.Errorf("Position %d: got (%d, %q), want (%d, %q)", i, s.Sequence, s.Text, i+1, wantTexts[i])
		}
	}
}

func TestAppendToCompletedTaskRejected(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	id := mustCreate(t, repo, CreateParams{Summary: "write report"})
	if err := repo.Complete(id); err != nil {
		t.Fatal(err)
	}

	_, err := repo.AppendStep(id, "too late")
	var terr *InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("Expected InvalidTransitionError, got %v", err)
	}
	if terr.Status != StatusCompleted {
		t.Errorf("Error should carry current state, got %q", terr.Status)
	}

	steps, err := repo.Steps(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 0 {
		t.Errorf("Rejected append must not record a step, got %d", len(steps))
	}
}

func TestAppendEmptyText(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	id := mustCreate(t, repo, CreateParams{Summary: "write report"})

	_, err := repo.AppendStep(id, "   ")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError, got %v", err)
	}
}

func TestAppendToMissingTask(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	if _, err := repo.AppendStep(42, "ghost step"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AppendStep(42): got %v, want ErrNotFound", err)
	}
}

func TestAppendRefreshesUpdatedAt(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	id := mustCreate(t, repo, CreateParams{Summary: "write report"})
	before := mustGet(t, repo, id)

	time.Sleep(10 * time.Millisecond)
	if _, err := repo.AppendStep(id, "progress"); err != nil {
		t.Fatal(err)
	}

	after := mustGet(t, repo, id)
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("Expected updated_at to refresh on step append: %v -> %v", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestStepsEmptyIsNotAnError(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	id := mustCreate(t, repo, CreateParams{Summary: "write report"})

	steps, err := repo.Steps(id)
	if err != nil {
		t.Fatalf("Steps failed: %v", err)
	}
	if steps == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(steps) != 0 {
		t.Errorf("Expected 0 steps, got %d", len(steps))
	}
}

func TestStepsOfMissingTask(t *testing.T) {
	t.Parallel()
	repo := newTestRepo(t)

	if _, err := repo.Steps(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Steps(42): got %v, want ErrNotFound", err)
	}
}
