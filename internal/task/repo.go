package task

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/XpressAI/xai-tasks/internal/store"
)

// Repo implements the task lifecycle against an open store handle.
type Repo struct {
	store *store.Store
}

// NewRepo wraps an open store.
func NewRepo(s *store.Store) *Repo {
	return &Repo{store: s}
}

// Create inserts a new task in the active, not-waiting state and returns
// its id. Initial steps, if supplied, are appended in order starting at
// sequence 1, in the same transaction as the task row.
func (r *Repo) Create(p CreateParams) (int64, error) {
	if strings.TrimSpace(p.Summary) == "" {
		return 0, &ValidationError{Field: "summary", Reason: "must not be empty"}
	}
	for i, text := range p.Steps {
		if strings.TrimSpace(text) == "" {
			return 0, &ValidationError{Field: "step", Reason: fmt.Sprintf("step %d must not be empty", i+1)}
		}
	}

	var id int64
	err := r.store.Tx(func(tx *sql.Tx) error {
		now := time.Now().UTC()

		res, err := tx.Exec(`
			INSERT INTO tasks (summary, conversation, details, status, waiting, created_at, updated_at)
			VALUES (?, ?, ?, ?, 0, ?, ?)
		`, p.Summary, p.Conversation, p.Details, StatusActive, now, now)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("read task id: %w", err)
		}

		for i, text := range p.Steps {
			_, err := tx.Exec(`
				INSERT INTO steps (task_id, sequence_number, text, recorded_at)
				VALUES (?, ?, ?, ?)
			`, id, i+1, text, now)
			if err != nil {
				return fmt.Errorf("insert step %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Get returns the full detail of a task: every stored field plus the
// ordered step sequence.
func (r *Repo) Get(id int64) (*Detail, error) {
	row, err := r.store.QueryRow(`
		SELECT id, summary, conversation, details, status, waiting, created_at, updated_at
		FROM tasks WHERE id = ?
	`, id)
	if err != nil {
		return nil, err
	}

	var d Detail
	var conversation, details sql.NullString
	err = row.Scan(&d.ID, &d.Summary, &conversation, &details, &d.Status, &d.Waiting, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	d.Conversation = conversation.String
	d.Details = details.String

	d.Steps, err = r.stepsOf(id)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Update changes only the supplied fields and refreshes updated_at. An
// update with no fields is rejected; so is an explicitly empty summary.
func (r *Repo) Update(id int64, u Update) error {
	if u.Summary == nil && u.Conversation == nil && u.Details == nil {
		return &ValidationError{Field: "update", Reason: "no fields supplied"}
	}
	if u.Summary != nil && strings.TrimSpace(*u.Summary) == "" {
		return &ValidationError{Field: "summary", Reason: "must not be empty"}
	}

	return r.store.Tx(func(tx *sql.Tx) error {
		if _, _, err := taskState(tx, id); err != nil {
			return err
		}

		set := make([]string, 0, 4)
		args := make([]any, 0, 5)
		if u.Summary != nil {
			set = append(set, "summary = ?")
			args = append(args, *u.Summary)
		}
		if u.Conversation != nil {
			set = append(set, "conversation = ?")
			args = append(args, *u.Conversation)
		}
		if u.Details != nil {
			set = append(set, "details = ?")
			args = append(args, *u.Details)
		}
		set = append(set, "updated_at = ?")
		args = append(args, time.Now().UTC(), id)

		query := "UPDATE tasks SET " + strings.Join(set, ", ") + " WHERE id = ?"
		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		return nil
	})
}

// Complete marks a task completed and clears the waiting flag.
// Completing an already-completed task is a no-op.
func (r *Repo) Complete(id int64) error {
	return r.store.Tx(func(tx *sql.Tx) error {
		status, _, err := taskState(tx, id)
		if err != nil {
			return err
		}
		if status == StatusCompleted {
			return nil
		}

		_, err = tx.Exec(`
			UPDATE tasks SET status = ?, waiting = 0, updated_at = ? WHERE id = ?
		`, StatusCompleted, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("complete task: %w", err)
		}
		return nil
	})
}

// Defer marks an active task as waiting. Deferring a completed task is
// rejected; deferring an already-waiting task is a no-op.
func (r *Repo) Defer(id int64) error {
	return r.store.Tx(func(tx *sql.Tx) error {
		status, waiting, err := taskState(tx, id)
		if err != nil {
			return err
		}
		if status == StatusCompleted {
			return &InvalidTransitionError{ID: id, Op: "defer", Status: status, Waiting: waiting}
		}
		if waiting {
			return nil
		}

		_, err = tx.Exec(`
			UPDATE tasks SET waiting = 1, updated_at = ? WHERE id = ?
		`, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("defer task: %w", err)
		}
		return nil
	})
}

// Resume clears the waiting flag of an active task. Resuming a completed
// task is rejected; resuming a task that is not waiting is a no-op.
func (r *Repo) Resume(id int64) error {
	return r.store.Tx(func(tx *sql.Tx) error {
		status, waiting, err := taskState(tx, id)
		if err != nil {
			return err
		}
		if status == StatusCompleted {
			return &InvalidTransitionError{ID: id, Op: "resume", Status: status, Waiting: waiting}
		}
		if !waiting {
			return nil
		}

		_, err = tx.Exec(`
			UPDATE tasks SET waiting = 0, updated_at = ? WHERE id = ?
		`, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("resume task: %w", err)
		}
		return nil
	})
}

// Delete removes the task and, cascading, all its steps. The id is never
// reused for a later task.
func (r *Repo) Delete(id int64) error {
	return r.store.Tx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM tasks WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// taskState reads a task's current lifecycle state inside a transaction.
func taskState(tx *sql.Tx, id int64) (Status, bool, error) {
	var status Status
	var waiting bool
	err := tx.QueryRow(`SELECT status, waiting FROM tasks WHERE id = ?`, id).Scan(&status, &waiting)
	if err == sql.ErrNoRows {
		return "", false, ErrNotFound
	}
	if err != nil {
		return "", false, fmt.Errorf("read task state: %w", err)
	}
	return status, waiting, nil
}
