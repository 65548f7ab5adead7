package term

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Console writes console calls to a terminal or any io.Writer. Safe
// for concurrent use; every call holds the mutex for the duration of
// its write so lines from different goroutines never interleave.
type Console struct {
	mu       sync.Mutex
	w        io.Writer
	indent   int
	counters map[string]int
	timers   map[string]time.Time
}

// Option configures a Console.
type Option func(*Console)

// WithWriter directs output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *Console) { c.w = w }
}

// New creates a terminal console writing to os.Stdout.
func New(opts ...Option) *Console {
	c := &Console{
		w:        os.Stdout,
		counters: make(map[string]int),
		timers:   make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// sprint joins args the way fmt.Sprintln does, without the newline.
func sprint(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// writeLine emits one line at the current group indentation.
// Callers hold c.mu.
func (c *Console) writeLine(s string) {
	pad := strings.Repeat("  ", c.indent)
	for _, line := range strings.Split(s, "\n") {
		fmt.Fprintf(c.w, "%s%s\n", pad, line)
	}
}

func (c *Console) emit(args []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLine(sprint(args))
}

func (c *Console) Log(args ...any)   { c.emit(args) }
func (c *Console) Warn(args ...any)  { c.emit(args) }
func (c *Console) Error(args ...any) { c.emit(args) }

// Trace emits the message followed by the calling stack, most recent
// frame first. Runtime-internal frames are skipped.
func (c *Console) Trace(args ...any) {
	const maxFrames = 8
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLine(sprint(args))
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			c.writeLine(fmt.Sprintf("    at %s (%s:%d)", frame.Function, frame.File, frame.Line))
		}
		if !more {
			return
		}
	}
}

// Dir renders a deep Go-syntax view of each argument.
func (c *Console) Dir(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range args {
		c.writeLine(fmt.Sprintf("%#v", a))
	}
}

// Dirxml is an alias of Dir; there is no markup tree to walk in a
// terminal process.
func (c *Console) Dirxml(args ...any) { c.Dir(args...) }

// Group emits the label (when given) and indents subsequent output
// until the matching GroupEnd.
func (c *Console) Group(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(args) > 0 {
		c.writeLine(sprint(args))
	}
	c.indent++
}

// GroupCollapsed behaves like Group; a terminal has nothing to
// collapse.
func (c *Console) GroupCollapsed(args ...any) { c.Group(args...) }

func (c *Console) GroupEnd(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indent > 0 {
		c.indent--
	}
}

// label extracts the leading string label of a structural call,
// falling back to "default" as host consoles do.
func label(args []any) string {
	if len(args) == 0 {
		return "default"
	}
	return fmt.Sprint(args[0])
}

// Count increments the counter for the label and reports its value.
func (c *Console) Count(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l := label(args)
	c.counters[l]++
	c.writeLine(fmt.Sprintf("%s: %d", l, c.counters[l]))
}

// Time starts a named wall-clock timer. Restarting a running timer
// resets it.
func (c *Console) Time(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers[label(args)] = time.Now()
}

// TimeEnd stops the named timer and reports the elapsed duration. An
// unknown label is reported rather than ignored, mirroring host
// console behavior.
func (c *Console) TimeEnd(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l := label(args)
	start, ok := c.timers[l]
	if !ok {
		c.writeLine(fmt.Sprintf("timer %q does not exist", l))
		return
	}
	delete(c.timers, l)
	c.writeLine(fmt.Sprintf("%s: %s", l, time.Since(start).Round(time.Microsecond)))
}

// TimeStamp emits a single instant marker.
func (c *Console) TimeStamp(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLine(fmt.Sprintf("%s @ %s", label(args), time.Now().Format("15:04:05.000")))
}

// Profile and ProfileEnd emit markers only; CPU profiling belongs to
// the runtime's own tooling.
func (c *Console) Profile(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLine(fmt.Sprintf("profile %q started", label(args)))
}

func (c *Console) ProfileEnd(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLine(fmt.Sprintf("profile %q finished", label(args)))
}

// Assert emits only when the first argument is falsy.
func (c *Console) Assert(args ...any) {
	if len(args) == 0 || truthy(args[0]) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeLine(sprint(append([]any{"Assertion failed:"}, args[1:]...)))
}

// Clear wipes the screen on interactive terminals and resets all
// structural state (indentation, counters, timers).
func (c *Console) Clear(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indent = 0
	c.counters = make(map[string]int)
	c.timers = make(map[string]time.Time)
	if f, ok := c.w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(c.w, "\x1b[2J\x1b[H")
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
