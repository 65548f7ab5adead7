package console

import "sync"

// Call is one recorded backend invocation.
type Call struct {
	Method string
	Args   []any
}

// Recorder is a Console that captures every call for later
// inspection. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Calls returns a copy of all recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// ByMethod returns the recorded calls for one method, in order.
func (r *Recorder) ByMethod(method string) []Call {
	var out []Call
	for _, c := range r.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) record(method string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: method, Args: args})
}

func (r *Recorder) Log(args ...any)            { r.record("log", args) }
func (r *Recorder) Warn(args ...any)           { r.record("warn", args) }
func (r *Recorder) Trace(args ...any)          { r.record("trace", args) }
func (r *Recorder) Error(args ...any)          { r.record("error", args) }
func (r *Recorder) Table(args ...any)          { r.record("table", args) }
func (r *Recorder) Dir(args ...any)            { r.record("dir", args) }
func (r *Recorder) Dirxml(args ...any)         { r.record("dirxml", args) }
func (r *Recorder) Group(args ...any)          { r.record("group", args) }
func (r *Recorder) GroupCollapsed(args ...any) { r.record("groupCollapsed", args) }
func (r *Recorder) GroupEnd(args ...any)       { r.record("groupEnd", args) }
func (r *Recorder) Count(args ...any)          { r.record("count", args) }
func (r *Recorder) Time(args ...any)           { r.record("time", args) }
func (r *Recorder) TimeEnd(args ...any)        { r.record("timeEnd", args) }
func (r *Recorder) TimeStamp(args ...any)      { r.record("timeStamp", args) }
func (r *Recorder) Profile(args ...any)        { r.record("profile", args) }
func (r *Recorder) ProfileEnd(args ...any)     { r.record("profileEnd", args) }
func (r *Recorder) Assert(args ...any)         { r.record("assert", args) }
func (r *Recorder) Clear(args ...any)          { r.record("clear", args) }
