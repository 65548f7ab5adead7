package console

// Null is a Console that discards everything. Useful as a backend for
// tests and for programs that want the logger surface without output.
type Null struct{}

// NewNull creates a Null console.
func NewNull() *Null { return &Null{} }

func (*Null) Log(args ...any)            {}
func (*Null) Warn(args ...any)           {}
func (*Null) Trace(args ...any)          {}
func (*Null) Error(args ...any)          {}
func (*Null) Table(args ...any)          {}
func (*Null) Dir(args ...any)            {}
func (*Null) Dirxml(args ...any)         {}
func (*Null) Group(args ...any)          {}
func (*Null) GroupCollapsed(args ...any) {}
func (*Null) GroupEnd(args ...any)       {}
func (*Null) Count(args ...any)          {}
func (*Null) Time(args ...any)           {}
func (*Null) TimeEnd(args ...any)        {}
func (*Null) TimeStamp(args ...any)      {}
func (*Null) Profile(args ...any)        {}
func (*Null) ProfileEnd(args ...any)     {}
func (*Null) Assert(args ...any)         {}
func (*Null) Clear(args ...any)          {}
