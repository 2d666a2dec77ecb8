package logging

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogConfigFromEnv(t *testing.T) {
	// Save original environment
	origEnabled := os.Getenv("LOG_FILE_ENABLED")
	origPath := os.Getenv("LOG_FILE_PATH")
	origMaxSize := os.Getenv("LOG_MAX_SIZE_MB")
	origMaxBackups := os.Getenv("LOG_MAX_BACKUPS")
	origMaxAge := os.Getenv("LOG_MAX_AGE_DAYS")
	origCompress := os.Getenv("LOG_COMPRESS")
	origLevel := os.Getenv("LOG_LEVEL")
	origJSON := os.Getenv("LOG_JSON_FORMAT")

	// Restore environment after test
	defer func() {
		os.Setenv("LOG_FILE_ENABLED", origEnabled)
		os.Setenv("LOG_FILE_PATH", origPath)
		os.Setenv("LOG_MAX_SIZE_MB", origMaxSize)
		os.Setenv("LOG_MAX_BACKUPS", origMaxBackups)
		os.Setenv("LOG_MAX_AGE_DAYS", origMaxAge)
		os.Setenv("LOG_COMPRESS", origCompress)
		os.Setenv("LOG_LEVEL", origLevel)
		os.Setenv("LOG_JSON_FORMAT", origJSON)
	}()

	t.Run("uses default values when env vars not set", func(t *testing.T) {
		os.Unsetenv("LOG_FILE_ENABLED")
		os.Unsetenv("LOG_FILE_PATH")
		os.Unsetenv("LOG_MAX_SIZE_MB")
		os.Unsetenv("LOG_MAX_BACKUPS")
		os.Unsetenv("LOG_MAX_AGE_DAYS")
		os.Unsetenv("LOG_COMPRESS")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("LOG_JSON_FORMAT")

		config := NewLogConfigFromEnv()

		assert.True(t, config.Enabled, "Should be enabled by default")
		assert.Equal(t, "./logs/tasktracker.log", config.FilePath)
		assert.Equal(t, 100, config.MaxSize)
		assert.Equal(t, 3, config.MaxBackups)
		assert.Equal(t, 28, config.MaxAge)
		assert.True(t, config.Compress)
		assert.Equal(t, "info", config.Level)
		assert.False(t, config.JSONFormat)
	})

	t.Run("uses custom values from environment", func(t *testing.T) {
		os.Setenv("LOG_FILE_ENABLED", "false")
		os.Setenv("LOG_FILE_PATH", "/var/log/custom.log")
		os.Setenv("LOG_MAX_SIZE_MB", "50")
		os.Setenv("LOG_MAX_BACKUPS", "5")
		os.Setenv("LOG_MAX_AGE_DAYS", "7")
		os.Setenv("LOG_COMPRESS", "false")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("LOG_JSON_FORMAT", "true")

		config := NewLogConfigFromEnv()

		assert.False(t, config.Enabled)
		assert.Equal(t, "/var/log/custom.log", config.FilePath)
		assert.Equal(t, 50, config.MaxSize)
		assert.Equal(t, 5, config.MaxBackups)
		assert.Equal(t, 7, config.MaxAge)
		assert.False(t, config.Compress)
		assert.Equal(t, "debug", config.Level)
		assert.True(t, config.JSONFormat)
	})

	t.Run("ignores invalid numeric values", func(t *testing.T) {
		os.Setenv("LOG_MAX_SIZE_MB", "not-a-number")
		os.Setenv("LOG_MAX_BACKUPS", "")

		config := NewLogConfigFromEnv()

		assert.Equal(t, 100, config.MaxSize)
		assert.Equal(t, 3, config.MaxBackups)
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("sets the configured level", func(t *testing.T) {
		logger := InitLogger(&LogConfig{Level: "debug"})
		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	})

	t.Run("falls back to info on invalid level", func(t *testing.T) {
		logger := InitLogger(&LogConfig{Level: "chatty"})
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	})

	t.Run("uses JSON formatter when configured", func(t *testing.T) {
		logger := InitLogger(&LogConfig{Level: "info", JSONFormat: true})
		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	})

	t.Run("uses text formatter by default", func(t *testing.T) {
		logger := InitLogger(&LogConfig{Level: "info"})
		assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	})

	t.Run("returns the shared logger instance", func(t *testing.T) {
		logger := InitLogger(&LogConfig{Level: "info"})
		assert.Same(t, Logger, logger)
	})
}
