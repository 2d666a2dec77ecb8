package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Buy milk")
	assert.Equal(t, "Buy milk", task.Description)
	assert.False(t, task.Completed)
}

func TestTaskStatus(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		status   string
		rendered string
	}{
		{"pending task", Task{Description: "Buy milk"}, "pending", "[ ] Buy milk"},
		{"completed task", Task{Description: "Write report", Completed: true}, "completed", "[X] Write report"},
		{"empty description", Task{}, "pending", "[ ] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.task.Status())
			assert.Equal(t, tt.rendered, tt.task.String())
		})
	}
}

func TestTaskRoundTrip(t *testing.T) {
	original := Task{Description: "Write report", Completed: true}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"Write report","completed":true}`, string(data))

	var decoded Task
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestTaskUnmarshalTolerant(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Task
	}{
		{
			"both fields present",
			`{"description":"Buy milk","completed":true}`,
			Task{Description: "Buy milk", Completed: true},
		},
		{
			"missing description",
			`{"completed":true}`,
			Task{Completed: true},
		},
		{
			"missing completed",
			`{"description":"Buy milk"}`,
			Task{Description: "Buy milk"},
		},
		{
			"wrong-typed description",
			`{"description":42,"completed":true}`,
			Task{Completed: true},
		},
		{
			"wrong-typed completed",
			`{"description":"Buy milk","completed":"yes"}`,
			Task{Description: "Buy milk"},
		},
		{
			"extra fields ignored",
			`{"description":"Buy milk","completed":false,"priority":"high","due":null}`,
			Task{Description: "Buy milk"},
		},
		{
			"empty object",
			`{}`,
			Task{},
		},
		{
			"not an object",
			`"just a string"`,
			Task{},
		},
		{
			"null",
			`null`,
			Task{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Start from a dirty value so defaults are actually applied.
			task := Task{Description: "stale", Completed: true}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &task))
			assert.Equal(t, tt.want, task)
		})
	}
}

func TestTaskRowConversion(t *testing.T) {
	task := Task{Description: "Call plumber", Completed: true}
	row := NewTaskRow(4, task)

	assert.Equal(t, 4, row.Position)
	assert.Equal(t, uuid.Nil, row.ID)
	assert.Equal(t, task, row.Task())
}

func TestTaskRowBeforeCreate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&TaskRow{}))

	t.Run("generates UUID if not set", func(t *testing.T) {
		row := NewTaskRow(0, NewTask("Buy milk"))
		err := db.Create(&row).Error
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, row.ID)
	})

	t.Run("preserves existing UUID", func(t *testing.T) {
		existingID := uuid.New()
		row := NewTaskRow(1, NewTask("Write report"))
		row.ID = existingID

		err := db.Create(&row).Error
		assert.NoError(t, err)
		assert.Equal(t, existingID, row.ID)
	})
}
