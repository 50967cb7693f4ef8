package task

import "time"

// Status is the lifecycle state of a task. The waiting flag is tracked
// separately: an active task may be working or waiting.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Task is the central entity: one tracked unit of work.
type Task struct {
	ID           int64     `json:"id" yaml:"id"`
	Summary      string    `json:"summary" yaml:"summary"`
	Conversation string    `json:"conversation,omitempty" yaml:"conversation,omitempty"`
	Details      string    `json:"details,omitempty" yaml:"details,omitempty"`
	Status       Status    `json:"status" yaml:"status"`
	Waiting      bool      `json:"waiting" yaml:"waiting"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"updated_at"`
}

// Step is one entry in a task's progress ledger.
type Step struct {
	Sequence   int       `json:"sequence" yaml:"sequence"`
	Text       string    `json:"text" yaml:"text"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}

// Detail is a task together with its full ordered step sequence.
type Detail struct {
	Task  `yaml:",inline"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// Summary is one row of the active-task listing. It carries a step count
// instead of the step text to keep listing cheap.
type Summary struct {
	ID        int64     `json:"id" yaml:"id"`
	Summary   string    `json:"summary" yaml:"summary"`
	Status    Status    `json:"status" yaml:"status"`
	Waiting   bool      `json:"waiting" yaml:"waiting"`
	StepCount int       `json:"step_count" yaml:"step_count"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// CreateParams carries the inputs for creating a task. Steps, if any,
// become the task's initial ledger entries in the given order.
type CreateParams struct {
	Summary      string
	Conversation string
	Details      string
	Steps        []string
}

// Update is a partial update: nil fields are left unchanged.
type Update struct {
	Summary      *string
	Conversation *string
	Details      *string
}

// Stats summarizes the whole task set.
type Stats struct {
	Working   int `json:"working" yaml:"working"`
	Waiting   int `json:"waiting" yaml:"waiting"`
	Completed int `json:"completed" yaml:"completed"`
	Steps     int `json:"steps" yaml:"steps"`
}
