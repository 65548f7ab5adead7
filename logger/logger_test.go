package logger

import (
	"strings"
	"testing"

	"github.com/lisfan/logger/console"
	"github.com/lisfan/logger/rules"
)

// newTestLogger builds a logger against a private registry and a
// recorder backend.
func newTestLogger(name string, opts ...Option) (*Logger, *rules.Registry, *console.Recorder) {
	reg := rules.New()
	rec := console.NewRecorder()
	opts = append([]Option{WithRegistry(reg), WithConsole(rec)}, opts...)
	return New(name, opts...), reg, rec
}

func TestDevModeOffDisablesEverything(t *testing.T) {
	l, reg, rec := newTestLogger("request")
	reg.Apply(map[string]bool{"request": true, "request.warn": true})
	reg.SetDevMode(false)

	if l.IsActivated("log") {
		t.Error("expected IsActivated false with dev-mode off")
	}
	l.Log("dropped").Warn("dropped").Count("dropped")
	if rec.Len() != 0 {
		t.Errorf("expected no forwarded calls, got %d", rec.Len())
	}
}

func TestMethodRuleFalseBeatsNamespaceTrue(t *testing.T) {
	l, reg, rec := newTestLogger("request")
	reg.Apply(map[string]bool{"request": true, "request.warn": false})

	l.Warn("dropped")
	l.Log("kept")

	if len(rec.ByMethod("warn")) != 0 {
		t.Error("expected warn suppressed by method rule")
	}
	if len(rec.ByMethod("log")) != 1 {
		t.Error("expected log to pass")
	}
}

func TestMethodRuleTrueDoesNotOverrideDisabledInstance(t *testing.T) {
	l, reg, rec := newTestLogger("request", WithDebug(false))
	reg.Apply(map[string]bool{"request": false, "request.warn": true})

	if l.IsActivated("warn") {
		t.Error("an enabled rule must not override debug=false")
	}
	l.Warn("dropped")
	if rec.Len() != 0 {
		t.Errorf("expected no forwarded calls, got %d", rec.Len())
	}
}

func TestMethodRuleTrueEnablesOverNamespaceFalse(t *testing.T) {
	l, reg, rec := newTestLogger("request")
	reg.Apply(map[string]bool{"request": false, "request.warn": true})

	l.Log("dropped")
	l.Warn("kept")

	if len(rec.ByMethod("log")) != 0 {
		t.Error("expected log suppressed by namespace rule")
	}
	if len(rec.ByMethod("warn")) != 1 {
		t.Error("expected warn enabled by method rule")
	}
}

func TestNoRulesDefaultsToActivated(t *testing.T) {
	l, _, rec := newTestLogger("request")
	l.Log("kept")
	if rec.Len() != 1 {
		t.Errorf("expected 1 forwarded call, got %d", rec.Len())
	}
}

func TestDisableEnableRoundTrip(t *testing.T) {
	l, _, rec := newTestLogger("request")

	l.Disable()
	l.Log("dropped").Warn("dropped").Table([]int{1})
	if rec.Len() != 0 {
		t.Errorf("expected nothing after Disable, got %d calls", rec.Len())
	}

	l.Enable()
	l.Log("kept")
	if rec.Len() != 1 {
		t.Errorf("expected output restored after Enable, got %d calls", rec.Len())
	}
}

func TestErrorAlwaysFails(t *testing.T) {
	l, reg, rec := newTestLogger("request", WithDebug(false))
	reg.SetDevMode(false)

	err := l.Error("a", "b")
	if err == nil {
		t.Fatal("Error must return a non-nil error regardless of activation")
	}
	if err.Error() != "a b" {
		t.Errorf("expected message 'a b', got %q", err.Error())
	}
	if rec.Len() != 0 {
		t.Error("Error must never forward to the backend")
	}

	if err := l.Error(); err == nil {
		t.Error("Error with no arguments must still fail")
	}
	if got := l.Error("code:", 42).Error(); got != "code: 42" {
		t.Errorf("expected 'code: 42', got %q", got)
	}
}

func TestTableForwardsArrays(t *testing.T) {
	l, _, rec := newTestLogger("request")
	l.Table([]int{1, 2, 3})

	if len(rec.ByMethod("table")) != 1 {
		t.Fatal("expected slice to reach the backend table")
	}
	if len(rec.ByMethod("log")) != 0 {
		t.Error("slice data must not fall back to log")
	}
}

func TestTableGatedLikePassThroughs(t *testing.T) {
	l, reg, rec := newTestLogger("request")
	reg.Apply(map[string]bool{"request.table": false})

	l.Table([]int{1, 2, 3})
	if rec.Len() != 0 {
		t.Error("expected table suppressed by its activation rule")
	}
}

func TestTableFallsBackToLogForScalars(t *testing.T) {
	l, _, rec := newTestLogger("request")
	l.Table(42)

	if len(rec.ByMethod("table")) != 0 {
		t.Error("scalar data must not reach the backend table")
	}
	logs := rec.ByMethod("log")
	if len(logs) != 1 {
		t.Fatal("expected scalar data to fall back to log")
	}
	if logs[0].Args[len(logs[0].Args)-1] != 42 {
		t.Errorf("expected 42 forwarded, got %v", logs[0].Args)
	}
}

func TestPassThroughsForwardUnmodified(t *testing.T) {
	l, _, rec := newTestLogger("request")

	l.Group("sec").Count("n").Time("t").TimeEnd("t").GroupEnd().Assert(false, "x").Clear()

	want := []string{"group", "count", "time", "timeEnd", "groupEnd", "assert", "clear"}
	calls := rec.Calls()
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %+v", len(want), len(calls), calls)
	}
	for i, m := range want {
		if calls[i].Method != m {
			t.Errorf("call %d: expected %s, got %s", i, m, calls[i].Method)
		}
	}
	if calls[0].Args[0] != "sec" {
		t.Errorf("expected group args unmodified, got %v", calls[0].Args)
	}
}

func TestOutputMethodsCarryPrefix(t *testing.T) {
	l, _, rec := newTestLogger("request")
	l.Log("hello")
	l.Warn("careful")

	for _, c := range rec.Calls() {
		prefix, ok := c.Args[0].(string)
		if !ok || !strings.Contains(prefix, "[request]:") {
			t.Errorf("%s: expected '[request]:' prefix first, got %v", c.Method, c.Args[0])
		}
	}
}

func TestInfoAndDebugAliasLog(t *testing.T) {
	l, _, rec := newTestLogger("request")
	l.Info("a")
	l.Debug("b")

	if len(rec.ByMethod("log")) != 2 {
		t.Errorf("expected info and debug to land on the backend log, got %+v", rec.Calls())
	}
}

func TestInfoGatedByOwnKey(t *testing.T) {
	l, reg, rec := newTestLogger("request")
	reg.Apply(map[string]bool{"request.info": false})

	l.Info("dropped")
	l.Log("kept")
	if len(rec.ByMethod("log")) != 1 {
		t.Errorf("expected only the plain log call, got %+v", rec.Calls())
	}
}

type fakeElement struct{ id string }

func (f fakeElement) RenderableElement() any { return f.id }

func TestRenderableArgsAreWrapped(t *testing.T) {
	l, _, rec := newTestLogger("request")
	el := fakeElement{id: "root"}
	l.Log("node:", el)

	args := rec.Calls()[0].Args
	wrapped, ok := args[2].([]any)
	if !ok || len(wrapped) != 1 {
		t.Fatalf("expected renderable wrapped in one-element slice, got %#v", args[2])
	}
	if wrapped[0] != any(el) {
		t.Errorf("expected original value inside wrapper, got %#v", wrapped[0])
	}
}

func TestColorBoundFunction(t *testing.T) {
	l, reg, rec := newTestLogger("request")
	pink := l.Color("#FF00FF")

	pink("hi")
	if len(rec.ByMethod("log")) != 1 {
		t.Fatal("expected bound function to emit through log")
	}
	prefix := rec.Calls()[0].Args[0].(string)
	if !strings.Contains(prefix, "[request]:") {
		t.Errorf("expected namespace prefix, got %q", prefix)
	}

	// Bound functions share log's activation key.
	rec.Reset()
	reg.Apply(map[string]bool{"request.log": false})
	pink("dropped")
	if rec.Len() != 0 {
		t.Error("expected bound function gated by the log rule")
	}
}

func TestNewDefaultsFromRegistry(t *testing.T) {
	reg := rules.New()
	reg.SetDefaults(rules.Defaults{Name: "app", Debug: false})

	l := New("", WithRegistry(reg), WithConsole(console.NewNull()))
	if l.Name() != "app" {
		t.Errorf("expected default name 'app', got %q", l.Name())
	}
	if l.IsActivated("log") {
		t.Error("expected default debug=false to disable output")
	}
}

