// Package zapconsole adapts a zap SugaredLogger to the console
// backend interface, so namespaced loggers can emit through an
// existing zap pipeline (encoders, sinks, sampling) instead of a
// plain terminal writer.
//
// Level mapping: Log lands at info, Warn at warn, Trace at debug,
// Error and failed assertions at error. Structural calls that have no
// zap counterpart (groups, profiles, timestamps) are emitted as info
// lines; counters and timers keep their own state, as in the terminal
// backend.
package zapconsole

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Console forwards console calls to a zap SugaredLogger.
type Console struct {
	log *zap.SugaredLogger

	mu       sync.Mutex
	counters map[string]int
	timers   map[string]time.Time
}

// New creates a Console over log. A nil log uses zap's global logger.
func New(log *zap.SugaredLogger) *Console {
	if log == nil {
		log = zap.S()
	}
	return &Console{
		log:      log,
		counters: make(map[string]int),
		timers:   make(map[string]time.Time),
	}
}

func (c *Console) Log(args ...any)   { c.log.Info(args...) }
func (c *Console) Warn(args ...any)  { c.log.Warn(args...) }
func (c *Console) Trace(args ...any) { c.log.Debug(args...) }
func (c *Console) Error(args ...any) { c.log.Error(args...) }

func (c *Console) Table(args ...any) {
	for _, a := range args {
		c.log.Infof("%+v", a)
	}
}

func (c *Console) Dir(args ...any) {
	for _, a := range args {
		c.log.Infof("%#v", a)
	}
}

func (c *Console) Dirxml(args ...any) { c.Dir(args...) }

func (c *Console) Group(args ...any)          { c.log.Info(args...) }
func (c *Console) GroupCollapsed(args ...any) { c.log.Info(args...) }
func (c *Console) GroupEnd(args ...any)       {}

func (c *Console) Count(args ...any) {
	l := label(args)
	c.mu.Lock()
	c.counters[l]++
	n := c.counters[l]
	c.mu.Unlock()
	c.log.Infof("%s: %d", l, n)
}

func (c *Console) Time(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers[label(args)] = time.Now()
}

func (c *Console) TimeEnd(args ...any) {
	l := label(args)
	c.mu.Lock()
	start, ok := c.timers[l]
	delete(c.timers, l)
	c.mu.Unlock()
	if !ok {
		c.log.Warnf("timer %q does not exist", l)
		return
	}
	c.log.Infof("%s: %s", l, time.Since(start).Round(time.Microsecond))
}

func (c *Console) TimeStamp(args ...any) {
	c.log.Infof("%s @ %s", label(args), time.Now().Format("15:04:05.000"))
}

func (c *Console) Profile(args ...any) {
	c.log.Infof("profile %q started", label(args))
}

func (c *Console) ProfileEnd(args ...any) {
	c.log.Infof("profile %q finished", label(args))
}

func (c *Console) Assert(args ...any) {
	if len(args) == 0 || truthy(args[0]) {
		return
	}
	c.log.Error(append([]any{"Assertion failed:"}, args[1:]...)...)
}

func (c *Console) Clear(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters = make(map[string]int)
	c.timers = make(map[string]time.Time)
}

func label(args []any) string {
	if len(args) == 0 {
		return "default"
	}
	return fmt.Sprint(args[0])
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
	default:
		return true
	}
}
