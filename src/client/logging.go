// Package main provides CLI logging configuration
package main

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/apimgr/courseplanner/src/client/paths"
)

var (
	// logger is the structured logger for CLI operations
	logger     *slog.Logger
	loggerOnce sync.Once
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level    string // debug, info, warn, error (default: warn)
	File     string // Log file path (empty = {log_dir}/cli.log)
	MaxSize  int    // Max log file size in MB (default: 10)
	MaxFiles int    // Max log files to keep (default: 5)
}

// GetLogConfig returns logging configuration from viper
func GetLogConfig() LogConfig {
	return LogConfig{
		Level:    viper.GetString("logging.level"),
		File:     viper.GetString("logging.file"),
		MaxSize:  viper.GetInt("logging.max_size"),
		MaxFiles: viper.GetInt("logging.max_files"),
	}
}

// parseLevel maps a config level name to a slog level, warn by default
func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// newSessionID returns a sortable id tying together the log lines of one run
func newSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// InitLogging installs a JSON slog logger writing to a rotating log file.
// The logger becomes slog's default, so packages logging through
// slog.Default() end up in the same file.
func InitLogging() error {
	var initErr error
	loggerOnce.Do(func() {
		cfg := GetLogConfig()

		logPath := cfg.File
		if logPath == "" {
			logPath = paths.LogFile()
		}
		logPath = paths.ExpandHome(logPath)

		if err := paths.EnsureFile(logPath); err != nil {
			initErr = fmt.Errorf("create log dir: %w", err)
			return
		}

		maxSize := cfg.MaxSize
		if maxSize == 0 {
			maxSize = 10
		}
		maxFiles := cfg.MaxFiles
		if maxFiles == 0 {
			maxFiles = 5
		}

		rotatingWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    maxSize, // MB
			MaxBackups: maxFiles,
			MaxAge:     30, // days
			Compress:   true,
		}

		handler := slog.NewJSONHandler(rotatingWriter, &slog.HandlerOptions{
			Level: parseLevel(cfg.Level),
		})

		logger = slog.New(handler).With("session", newSessionID())
		slog.SetDefault(logger)
	})
	return initErr
}

// Logger returns the CLI logger
func Logger() *slog.Logger {
	if logger == nil {
		// Fallback to stderr if not initialized
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return logger
}

// LogWarn logs a warning message
func LogWarn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}
