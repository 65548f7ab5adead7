package logger

import (
	"sync"

	"github.com/lisfan/logger/console"
	"github.com/lisfan/logger/console/term"
	"github.com/lisfan/logger/rules"
)

// defaultConsole is shared by all loggers built without WithConsole,
// so group indentation and counters stay coherent across namespaces.
var defaultConsole console.Console = term.New()

var (
	registryOnce sync.Once
	registry     *rules.Registry
)

// DefaultRegistry returns the package default registry, created from
// the environment on first use. Tests that touch it should call its
// Reset method when done.
func DefaultRegistry() *rules.Registry {
	registryOnce.Do(func() {
		registry = rules.FromEnv()
	})
	return registry
}

// ConfigureRules merges patch into the default registry's rules. New
// entries win over earlier ones; rules supplied via LOGGER_RULES win
// over everything.
func ConfigureRules(patch map[string]bool) {
	DefaultRegistry().Apply(patch)
}

// Configure sets the construction defaults (name, debug) applied to
// loggers that don't specify their own.
func Configure(d rules.Defaults) {
	DefaultRegistry().SetDefaults(d)
}

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
)

// Default returns the default Logger (namespace from the registry
// defaults, terminal backend).
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		defer defaultMu.Unlock()
		if defaultLogger == nil {
			defaultLogger = New("")
		}
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the default Logger used by the package-level
// functions.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions delegating to the default
// Logger.

func Log(args ...any) *Logger   { return Default().Log(args...) }
func Info(args ...any) *Logger  { return Default().Info(args...) }
func Debug(args ...any) *Logger { return Default().Debug(args...) }
func Warn(args ...any) *Logger  { return Default().Warn(args...) }
func Trace(args ...any) *Logger { return Default().Trace(args...) }
func Error(args ...any) error   { return Default().Error(args...) }
func Table(data any) *Logger    { return Default().Table(data) }
