package task

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// AppendStep records one increment of progress on a task and returns the
// assigned sequence number. Sequence numbers are max existing + 1, so a
// fresh task's first step is 1. Appending to a completed task is
// rejected; a step append counts as a mutation and refreshes the task's
// updated_at.
func (r *Repo) AppendStep(id int64, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, &ValidationError{Field: "text", Reason: "must not be empty"}
	}

	var seq int
	err := r.store.Tx(func(tx *sql.Tx) error {
		status, waiting, err := taskState(tx, id)
		if err != nil {
			return err
		}
		if status == StatusCompleted {
			return &InvalidTransitionError{ID: id, Op: "append step to", Status: status, Waiting: waiting}
		}

		err = tx.QueryRow(`
			SELECT COALESCE(MAX(sequence_number), 0) + 1 FROM steps WHERE task_id = ?
		`, id).Scan(&seq)
		if err != nil {
			return fmt.Errorf("next sequence number: %w", err)
		}

		now := time.Now().UTC()
		_, err = tx.Exec(`
			INSERT INTO steps (task_id, sequence_number, text, recorded_at)
			VALUES (?, ?, ?, ?)
		`, id, seq, text, now)
		if err != nil {
			return fmt.Errorf("insert step: %w", err)
		}

		_, err = tx.Exec(`UPDATE tasks SET updated_at = ? WHERE id = ?`, now, id)
		if err != nil {
			return fmt.Errorf("touch task: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// Steps returns a task's progress ledger ordered by sequence number. A
// task with no steps yields an empty (non-nil) slice; a missing task is
// ErrNotFound.
func (r *Repo) Steps(id int64) ([]Step, error) {
	row, err := r.store.QueryRow(`SELECT 1 FROM tasks WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	var one int
	if err := row.Scan(&one); err == sql.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("check task: %w", err)
	}

	return r.stepsOf(id)
}

func (r *Repo) stepsOf(id int64) ([]Step, error) {
	rows, err := r.store.Query(`
		SELECT sequence_number, text, recorded_at
		FROM steps
		WHERE task_id = ?
		ORDER BY sequence_number ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	steps := []Step{}
	for rows.Next() {
		var s Step
		if err := rows.Scan(&s.Sequence, &s.Text, &s.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		steps = append(steps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read steps: %w", err)
	}
	return steps, nil
}
