package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"tasktracker/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")
	return db
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	sqlDB, err := db.DB()
	require.NoError(t, err)
	err = sqlDB.Close()
	require.NoError(t, err)
}

// TempTaskFile returns a path for a task database inside a test temp dir.
// The file itself is not created.
func TempTaskFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "todo_database.json")
}

// WriteTaskFile writes raw content to a task database file
func WriteTaskFile(t *testing.T, path, content string) {
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err, "Failed to write task file")
}

// ReadTaskFile reads the raw content of a task database file
func ReadTaskFile(t *testing.T, path string) string {
	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read task file")
	return string(data)
}

// SampleTasks returns a small fixed task list
func SampleTasks() []models.Task {
	return []models.Task{
		{Description: "Buy milk", Completed: false},
		{Description: "Write report", Completed: true},
		{Description: "Call plumber", Completed: false},
	}
}
