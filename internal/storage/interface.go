package storage

import (
	"errors"

	"tasktracker/internal/models"
)

var (
	ErrNotFound = errors.New("task database not found")
	ErrDecode   = errors.New("task database is malformed")
)

// Backend defines the interface for task persistence. A backend always
// carries the full ordered snapshot: Load returns every task in list order
// and Save replaces whatever was stored before.
type Backend interface {
	Load() ([]models.Task, error)
	Save(tasks []models.Task) error
}
