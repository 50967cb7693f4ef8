package task

import "fmt"

// ListActive returns every task that is not completed (both working and
// waiting), oldest first. Ties on created_at break on id so the order is
// deterministic. Each row carries a step count rather than step text.
func (r *Repo) ListActive() ([]Summary, error) {
	rows, err := r.store.Query(`
		SELECT t.id, t.summary, t.status, t.waiting, t.created_at, COUNT(s.id)
		FROM tasks t
		LEFT JOIN steps s ON s.task_id = t.id
		WHERE t.status != ?
		GROUP BY t.id
		ORDER BY t.created_at ASC, t.id ASC
	`, StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Summary, &s.Status, &s.Waiting, &s.CreatedAt, &s.StepCount); err != nil {
			return nil, fmt.Errorf("scan listing row: %w", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read listing: %w", err)
	}
	return list, nil
}

// CountStats tallies tasks by lifecycle state plus the total number of
// recorded steps.
func (r *Repo) CountStats() (*Stats, error) {
	row, err := r.store.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN status != ? AND waiting = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status != ? AND waiting = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM tasks
	`, StatusCompleted, StatusCompleted, StatusCompleted)
	if err != nil {
		return nil, err
	}

	var st Stats
	if err := row.Scan(&st.Working, &st.Waiting, &st.Completed); err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}

	row, err = r.store.QueryRow(`SELECT COUNT(*) FROM steps`)
	if err != nil {
		return nil, err
	}
	if err := row.Scan(&st.Steps); err != nil {
		return nil, fmt.Errorf("scan step count: %w", err)
	}
	return &st, nil
}
