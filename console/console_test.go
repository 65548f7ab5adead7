package console

import "testing"

func TestRecorderCapturesOrder(t *testing.T) {
	r := NewRecorder()
	r.Log("a")
	r.Warn("b")
	r.Log("c")

	calls := r.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(calls))
	}
	if calls[0].Method != "log" || calls[1].Method != "warn" || calls[2].Method != "log" {
		t.Errorf("unexpected call order: %+v", calls)
	}

	logs := r.ByMethod("log")
	if len(logs) != 2 {
		t.Fatalf("expected 2 log calls, got %d", len(logs))
	}
	if logs[1].Args[0] != "c" {
		t.Errorf("expected second log arg 'c', got %v", logs[1].Args[0])
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("expected empty recorder after Reset, got %d calls", r.Len())
	}
}

func TestMultiFansOut(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	m := NewMulti(a, b, NewNull())

	m.Log("hello")
	m.GroupEnd()

	for _, rec := range []*Recorder{a, b} {
		if rec.Len() != 2 {
			t.Fatalf("expected 2 calls, got %d", rec.Len())
		}
		if rec.Calls()[1].Method != "groupEnd" {
			t.Errorf("expected groupEnd, got %s", rec.Calls()[1].Method)
		}
	}
}

// Compile-time interface checks for every implementation.
var (
	_ Console = (*Null)(nil)
	_ Console = (*Recorder)(nil)
	_ Console = (*Multi)(nil)
)
