package logger

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/lisfan/logger/console"
	"github.com/lisfan/logger/formatter"
	"github.com/lisfan/logger/rules"
)

// Logger emits namespaced output through a console backend. The
// namespace is fixed at construction; the debug flag can be toggled
// with Enable/Disable at any time. All other state (rules, dev-mode)
// lives in the shared registry and is re-read on every call, so rule
// changes take effect immediately.
type Logger struct {
	name     string
	debug    atomic.Bool
	registry *rules.Registry
	console  console.Console
	theme    formatter.Theme
}

// Option configures a Logger at construction.
type Option func(*options)

type options struct {
	debug    *bool
	registry *rules.Registry
	console  console.Console
	theme    *formatter.Theme
}

// WithDebug sets the instance debug flag, overriding the registry
// default.
func WithDebug(on bool) Option {
	return func(o *options) { o.debug = &on }
}

// WithRegistry points the logger at a private registry instead of the
// package default. Loggers sharing a registry share rules and the
// dev-mode flag.
func WithRegistry(r *rules.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithConsole sets the backend the logger forwards to.
func WithConsole(c console.Console) Option {
	return func(o *options) { o.console = c }
}

// WithTheme sets the prefix color theme.
func WithTheme(t formatter.Theme) Option {
	return func(o *options) { o.theme = &t }
}

// New creates a Logger for the given namespace. An empty name takes
// the registry's configured default (normally "logger"); the debug
// flag likewise defaults from the registry. Unconfigured loggers
// share the package default registry and terminal backend.
func New(name string, opts ...Option) *Logger {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	reg := o.registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	defaults := reg.Defaults()
	if name == "" {
		name = defaults.Name
	}
	debug := defaults.Debug
	if o.debug != nil {
		debug = *o.debug
	}
	con := o.console
	if con == nil {
		con = defaultConsole
	}
	theme := formatter.Default()
	if o.theme != nil {
		theme = *o.theme
	}

	l := &Logger{
		name:     name,
		registry: reg,
		console:  con,
		theme:    theme,
	}
	l.debug.Store(debug)
	return l
}

// Name returns the logger's namespace.
func (l *Logger) Name() string { return l.name }

// IsActivated reports whether a call to the given method would reach
// the backend. The decision, most restrictive first: dev-mode off
// disables everything; an explicit false rule (method rule shadowing
// the namespace rule) disables the call even when the instance debug
// flag is on; an explicit true rule never overrides a disabled
// instance. With no rule configured, the instance flag decides alone.
func (l *Logger) IsActivated(method string) bool {
	if !l.registry.DevMode() {
		return false
	}
	if v, ok := l.registry.Resolve(l.name, method); ok && !v {
		return false
	}
	return l.debug.Load()
}

// Enable turns the instance debug flag on.
func (l *Logger) Enable() *Logger {
	l.debug.Store(true)
	return l
}

// Disable turns the instance debug flag off. Rules with an explicit
// true value do not bring output back while disabled.
func (l *Logger) Disable() *Logger {
	l.debug.Store(false)
	return l
}

// prefixed builds the forwarded argument list: styled prefix first,
// then the caller's arguments with Renderable values wrapped in a
// one-element slice.
func (l *Logger) prefixed(method string, args []any) []any {
	out := make([]any, 0, len(args)+1)
	out = append(out, l.theme.Prefix(l.name, method))
	return appendWrapped(out, args)
}

func appendWrapped(dst []any, args []any) []any {
	for _, a := range args {
		if _, ok := a.(console.Renderable); ok {
			a = []any{a}
		}
		dst = append(dst, a)
	}
	return dst
}

// Log emits a plain line under the "log" activation key.
func (l *Logger) Log(args ...any) *Logger {
	if l.IsActivated("log") {
		l.console.Log(l.prefixed("log", args)...)
	}
	return l
}

// Info is an alias of Log under its own activation key.
func (l *Logger) Info(args ...any) *Logger {
	if l.IsActivated("info") {
		l.console.Log(l.prefixed("info", args)...)
	}
	return l
}

// Debug is an alias of Log under its own activation key.
func (l *Logger) Debug(args ...any) *Logger {
	if l.IsActivated("debug") {
		l.console.Log(l.prefixed("debug", args)...)
	}
	return l
}

// Warn emits a warning line.
func (l *Logger) Warn(args ...any) *Logger {
	if l.IsActivated("warn") {
		l.console.Warn(l.prefixed("warn", args)...)
	}
	return l
}

// Trace emits a line with caller context (backend permitting).
func (l *Logger) Trace(args ...any) *Logger {
	if l.IsActivated("trace") {
		l.console.Trace(l.prefixed("trace", args)...)
	}
	return l
}

// Error never emits. It always returns a non-nil error whose message
// is every argument's textual form joined with single spaces,
// regardless of activation, rules, or the debug flag. An error-level
// call is a failure signal: callers must treat it as aborting the
// current operation.
func (l *Logger) Error(args ...any) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return errors.New(strings.Join(parts, " "))
}

// Table forwards tabular data (slices, arrays, maps, structs) to the
// backend's Table under the "table" activation key. Anything else has
// no rows to render and falls back to Log.
func (l *Logger) Table(data any) *Logger {
	if !tabular(data) {
		return l.Log(data)
	}
	if l.IsActivated("table") {
		l.console.Table(data)
	}
	return l
}

func tabular(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return true
	default:
		return false
	}
}

// Color returns a log-style function bound to a fixed prefix color.
// The returned function shares Log's activation key and argument
// wrapping; only the prefix styling differs.
func (l *Logger) Color(color string) func(args ...any) {
	prefix := formatter.CustomPrefix(l.name, color)
	return func(args ...any) {
		if !l.IsActivated("log") {
			return
		}
		l.console.Log(appendWrapped([]any{prefix}, args)...)
	}
}
