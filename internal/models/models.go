package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a single to-do item. A task has no identity of its own;
// callers address it by its position in the owning list.
type Task struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewTask creates a pending task with the given description.
func NewTask(description string) Task {
	return Task{Description: description}
}

// Status returns the display status of the task.
func (t Task) Status() string {
	if t.Completed {
		return "completed"
	}
	return "pending"
}

// String renders the task the way the list view shows it.
func (t Task) String() string {
	if t.Completed {
		return "[X] " + t.Description
	}
	return "[ ] " + t.Description
}

// UnmarshalJSON reconstructs a task tolerantly: a missing or wrong-typed
// field falls back to its zero value and unknown keys are ignored, so a
// hand-edited or partially written database never fails to load. An element
// that is not an object at all decodes as the zero task.
func (t *Task) UnmarshalJSON(data []byte) error {
	*t = Task{}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	if v, ok := raw["description"]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			t.Description = s
		}
	}
	if v, ok := raw["completed"]; ok {
		var b bool
		if err := json.Unmarshal(v, &b); err == nil {
			t.Completed = b
		}
	}
	return nil
}

// TaskRow is the database mapping of a task for the SQLite backend. The row
// key exists only to satisfy the schema; it is never exposed to callers, who
// keep addressing tasks by position.
type TaskRow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"not null;index"`
	Description string    `gorm:"size:500"`
	Completed   bool      `gorm:"default:false;index"`
}

// TableName overrides the GORM table name.
func (TaskRow) TableName() string {
	return "tasks"
}

// BeforeCreate hook to generate UUID if not set
func (r *TaskRow) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// NewTaskRow maps a task at the given 0-based position to its row form.
func NewTaskRow(position int, t Task) TaskRow {
	return TaskRow{
		Position:    position,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

// Task converts the row back to its in-memory form.
func (r TaskRow) Task() Task {
	return Task{Description: r.Description, Completed: r.Completed}
}
