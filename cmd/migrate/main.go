// Command migrate copies the task snapshot between the two storage
// backends, either direction.
package main

import (
	"errors"
	"fmt"
	"os"

	"tasktracker/internal/storage"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		printUsage()
		return 1
	}

	if err := runCommand(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runCommand(command string) error {
	jsonPath := getEnv("TASKDB_PATH", "todo_database.json")
	sqlitePath := getEnv("TASKDB_SQLITE_PATH", "todo_database.db")

	switch command {
	case "to-sqlite":
		db, err := storage.OpenSQLiteBackend(sqlitePath)
		if err != nil {
			return err
		}
		return copyTasks(storage.NewFileBackend(jsonPath), db, jsonPath, sqlitePath)
	case "to-json":
		db, err := storage.OpenSQLiteBackend(sqlitePath)
		if err != nil {
			return err
		}
		return copyTasks(db, storage.NewFileBackend(jsonPath), sqlitePath, jsonPath)
	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func copyTasks(src, dst storage.Backend, from, to string) error {
	items, err := src.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("load %s: %w", from, err)
		}
		items = nil
	}
	if err := dst.Save(items); err != nil {
		return fmt.Errorf("save %s: %w", to, err)
	}
	fmt.Printf("Migrated %d tasks from %s to %s\n", len(items), from, to)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func printUsage() {
	fmt.Print(`Task Database Migration Tool

Usage:
  migrate <command>

Commands:
  to-sqlite   Copy all tasks from the JSON file into the SQLite database
  to-json     Copy all tasks from the SQLite database into the JSON file

Environment Variables:
  TASKDB_PATH          JSON task database path (default: todo_database.json)
  TASKDB_SQLITE_PATH   SQLite task database path (default: todo_database.db)
`)
}
