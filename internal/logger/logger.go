// Package logger provides structured logging using Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu    sync.Mutex
	sugar *zap.SugaredLogger
)

// Init initializes the global logger for the given environment. Calling it
// again after the logger exists is a no-op.
func Init(env string) {
	mu.Lock()
	defer mu.Unlock()
	if sugar == nil {
		sugar = build(env).Sugar()
	}
}

// build selects the encoder by environment: JSON for production, a
// human-readable console encoder everywhere else.
func build(env string) *zap.Logger {
	var (
		base *zap.Logger
		err  error
	)
	switch env {
	case "production":
		base, err = zap.NewProduction()
	default:
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return base
}

// Get returns the global sugared logger, initializing a development logger
// on first use if Init was never called.
func Get() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if sugar == nil {
		sugar = build("development").Sugar()
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if sugar != nil {
		_ = sugar.Sync()
	}
}
