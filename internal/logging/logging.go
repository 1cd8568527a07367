// Package logging provides the structured logger used across every
// pipeline stage. It wraps zap the way the CLI entry point does
// (production config by default, development config under verbose
// mode) but exposes a per-component accessor instead of one global
// logger, so each stage's fields (provider, tier, iteration, ...)
// land under a consistent "component" tag.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu   sync.RWMutex
	base *zap.Logger
)

// Init builds the base logger. Call once at process start; safe to
// call again in tests to switch verbosity. debug selects development
// mode (console encoding, debug level, stack traces on warn+).
func Init(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	base = l
	mu.Unlock()
	return nil
}

func ensure() *zap.Logger {
	mu.RLock()
	l := base
	mu.RUnlock()
	if l != nil {
		return l
	}
	// Lazily fall back to a no-frills production logger so packages
	// never need a nil check before logging; tests that don't call
	// Init still get sane output.
	l, _ = zap.NewProduction()
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	if base == nil {
		base = l
	}
	l = base
	mu.Unlock()
	return l
}

// Component returns a sugared logger tagged with component=name, used
// by each pipeline stage (normalizer, dedup, temporal, extraction,
// llmadapter, merge, timeline, narrative, section, quality,
// orchestrator, cache).
func Component(name string) *zap.SugaredLogger {
	return ensure().With(zap.String("component", name)).Sugar()
}

// Sync flushes buffered log entries; call before process exit.
func Sync() {
	mu.RLock()
	l := base
	mu.RUnlock()
	if l != nil {
		_ = l.Sync()
	}
}
