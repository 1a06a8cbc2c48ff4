// Package logging provides the shared zap logger for the AJC portal.
// Subsystems obtain named child loggers per category so log lines can be
// filtered by origin (auth, snapshot, commands, bot, server).
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a portal subsystem for log correlation.
type Category string

const (
	CategoryAuth     Category = "auth"
	CategorySnapshot Category = "snapshot"
	CategoryCommands Category = "commands"
	CategoryBot      Category = "bot"
	CategoryServer   Category = "server"
	CategoryUI       Category = "ui"
)

var (
	mu   sync.RWMutex
	root = zap.NewNop()
)

// Initialize builds the process-wide logger. Called once from the cobra
// PersistentPreRunE; before that, all categories log to a nop logger.
func Initialize(verbose bool) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	root = logger
	mu.Unlock()
	return nil
}

// SetLogger replaces the root logger. Tests use this to capture output.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	root = l
}

// Get returns the named logger for a category.
func Get(c Category) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(string(c))
}

// Sync flushes buffered log entries. Safe to call on the nop logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}
