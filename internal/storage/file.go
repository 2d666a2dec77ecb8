package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tasktracker/internal/models"
)

// FileBackend stores the task list as a JSON array in a single file. The
// file is opened fresh for every Load and Save; no handle is held between
// operations.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend for the given path. The file does
// not have to exist yet; Load reports ErrNotFound and the first Save
// creates it.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the location of the backing file.
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the full task list from the file. A missing file reports
// ErrNotFound; content that is not a JSON array reports ErrDecode.
// Individual elements decode tolerantly (see models.Task.UnmarshalJSON).
func (b *FileBackend) Load() ([]models.Task, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read task database: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return tasks, nil
}

// Save overwrites the file with the full task list. The data is written to
// a temporary file in the same directory and renamed into place, so a crash
// mid-write never leaves a truncated database behind.
func (b *FileBackend) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode task database: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(b.path, data, 0o644); err != nil {
		return fmt.Errorf("write task database: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
