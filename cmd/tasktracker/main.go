package main

import (
	"flag"
	"os"

	"tasktracker/internal/cli"
	"tasktracker/internal/logging"
	"tasktracker/internal/storage"
	"tasktracker/internal/tasks"
)

func main() {
	// Initialize logging first
	logConfig := logging.NewLogConfigFromEnv()
	logging.InitLogger(logConfig)

	dbPath := flag.String("db", "", "path to the task database file (overrides TASKDB_PATH)")
	flag.Parse()

	backend, location := openBackend(*dbPath)

	list, status := tasks.Open(backend)
	cli.PrintLoadNotice(os.Stdout, location, status)

	if err := cli.Run(list, os.Stdin, os.Stdout); err != nil {
		logging.Logger.Fatalf("Input error: %v", err)
	}
}

// openBackend selects the storage backend. The JSON file is the default;
// USE_SQLITE_STORAGE=true switches to the SQLite database.
func openBackend(flagPath string) (storage.Backend, string) {
	if os.Getenv("USE_SQLITE_STORAGE") == "true" {
		path := getEnv("TASKDB_SQLITE_PATH", "todo_database.db")
		backend, err := storage.OpenSQLiteBackend(path)
		if err != nil {
			logging.Logger.Fatalf("Failed to open task database: %v", err)
		}
		logging.Logger.Infof("Using SQLite storage at %s", path)
		return backend, path
	}

	path := flagPath
	if path == "" {
		path = getEnv("TASKDB_PATH", "todo_database.json")
	}
	return storage.NewFileBackend(path), path
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
