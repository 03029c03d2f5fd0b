package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/storage"
)

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	}), nil
}

// openLogger returns a logger for a command. With --log-file the logger
// appends to that file. Otherwise it writes to fallback.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(fallback)
		return logger, func() {}, err
	}

	if dir := filepath.Dir(flagLogFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens score storage. History is optional: an empty --db or
// a failure to open yields a nil store and the game runs without it.
func openStore(logger *log.Logger) *storage.Store {
	if flagDBPath == "" {
		logger.Debug("score history disabled")
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("score history disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}
