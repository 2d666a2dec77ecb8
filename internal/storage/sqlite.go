package storage

import (
	"fmt"

	"tasktracker/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteBackend stores the task list in a SQLite database using GORM. Rows
// are ordered by an internal position column; like the file backend, Save
// replaces the full snapshot.
type SQLiteBackend struct {
	db *gorm.DB
}

// OpenSQLiteBackend opens (or creates) the database at the given path and
// ensures the tasks table exists.
func OpenSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open task database: %w", err)
	}
	return NewSQLiteBackend(db)
}

// NewSQLiteBackend wraps an existing GORM connection. Used by tests with an
// in-memory database.
func NewSQLiteBackend(db *gorm.DB) (*SQLiteBackend, error) {
	if err := db.AutoMigrate(&models.TaskRow{}); err != nil {
		return nil, fmt.Errorf("migrate task database: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Load returns all tasks ordered by position. An empty table is an empty
// list, not an error: opening the backend already created the database, so
// ErrNotFound never applies here.
func (b *SQLiteBackend) Load() ([]models.Task, error) {
	var rows []models.TaskRow
	if err := b.db.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read task database: %w", err)
	}

	tasks := make([]models.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.Task())
	}
	return tasks, nil
}

// Save rewrites the full snapshot in a single transaction: every existing
// row is removed and the current list inserted in order.
func (b *SQLiteBackend) Save(tasks []models.Task) error {
	err := b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TaskRow{}).Error; err != nil {
			return err
		}
		for i, task := range tasks {
			row := models.NewTaskRow(i, task)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("write task database: %w", err)
	}
	return nil
}
