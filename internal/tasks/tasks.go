package tasks

import (
	"errors"
	"fmt"

	"tasktracker/internal/logging"
	"tasktracker/internal/models"
	"tasktracker/internal/storage"
)

var (
	// ErrInvalidPosition reports a position outside [1, len]. The list is
	// left untouched.
	ErrInvalidPosition = errors.New("invalid task position")

	// ErrPersist reports that a mutation was applied in memory but could
	// not be flushed to storage. The mutation still counts as successful;
	// the in-memory list stays authoritative for the session.
	ErrPersist = errors.New("task database could not be written")
)

// LoadStatus describes how the initial load went. Every failure degrades to
// an empty list; the status lets the caller tell the user why.
type LoadStatus int

const (
	// LoadedExisting means tasks were read from storage.
	LoadedExisting LoadStatus = iota
	// StartedFresh means storage did not exist yet.
	StartedFresh
	// RecoveredCorrupt means storage existed but could not be decoded.
	RecoveredCorrupt
	// RecoveredUnreadable means storage existed but could not be read.
	RecoveredUnreadable
)

// TaskList owns the ordered task collection and keeps it in sync with its
// backend: every successful mutation persists the full snapshot before
// returning. Positions are 1-based at this boundary and translated to
// 0-based indexes internally.
type TaskList struct {
	backend storage.Backend
	items   []models.Task
}

// Open loads the task list from the backend. Load failures never propagate:
// the list starts empty and the status reports what happened.
func Open(backend storage.Backend) (*TaskList, LoadStatus) {
	items, err := backend.Load()
	status := LoadedExisting
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		status = StartedFresh
		items = nil
	case errors.Is(err, storage.ErrDecode):
		logging.Logger.WithError(err).Warn("Task database is corrupt, starting with an empty list")
		status = RecoveredCorrupt
		items = nil
	default:
		logging.Logger.WithError(err).Warn("Task database is unreadable, starting with an empty list")
		status = RecoveredUnreadable
		items = nil
	}
	return &TaskList{backend: backend, items: items}, status
}

// Add appends a new pending task and returns its 1-based position. A
// returned error always wraps ErrPersist; the task is in the list either
// way.
func (l *TaskList) Add(description string) (int, error) {
	l.items = append(l.items, models.NewTask(description))
	return len(l.items), l.flush()
}

// Edit replaces the description of the task at the given position, leaving
// its completion state untouched, and returns the previous description.
func (l *TaskList) Edit(position int, newDescription string) (string, error) {
	i, err := l.index(position)
	if err != nil {
		return "", err
	}
	old := l.items[i].Description
	l.items[i].Description = newDescription
	return old, l.flush()
}

// ToggleDone flips the completion flag of the task at the given position
// and returns the resulting status ("completed" or "pending").
func (l *TaskList) ToggleDone(position int) (string, error) {
	i, err := l.index(position)
	if err != nil {
		return "", err
	}
	l.items[i].Completed = !l.items[i].Completed
	return l.items[i].Status(), l.flush()
}

// Remove deletes the task at the given position, shifting later tasks one
// position earlier, and returns the removed task's description.
func (l *TaskList) Remove(position int) (string, error) {
	i, err := l.index(position)
	if err != nil {
		return "", err
	}
	removed := l.items[i].Description
	l.items = append(l.items[:i], l.items[i+1:]...)
	return removed, l.flush()
}

// Tasks returns a copy of the current list. Storage is not touched.
func (l *TaskList) Tasks() []models.Task {
	out := make([]models.Task, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.items)
}

// index validates a 1-based position and translates it to a 0-based index.
func (l *TaskList) index(position int) (int, error) {
	if position < 1 || position > len(l.items) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	return position - 1, nil
}

func (l *TaskList) flush() error {
	if err := l.backend.Save(l.items); err != nil {
		logging.Logger.WithError(err).Error("Failed to persist task database")
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}
