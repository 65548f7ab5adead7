package console

// Multi sends every call to multiple consoles in order. Useful for
// mirroring output, e.g. a terminal backend plus a recorder.
type Multi struct {
	consoles []Console
}

// NewMulti creates a Multi fanning out to the given consoles.
func NewMulti(consoles ...Console) *Multi {
	return &Multi{consoles: consoles}
}

func (m *Multi) each(fn func(Console)) {
	for _, c := range m.consoles {
		fn(c)
	}
}

func (m *Multi) Log(args ...any)    { m.each(func(c Console) { c.Log(args...) }) }
func (m *Multi) Warn(args ...any)   { m.each(func(c Console) { c.Warn(args...) }) }
func (m *Multi) Trace(args ...any)  { m.each(func(c Console) { c.Trace(args...) }) }
func (m *Multi) Error(args ...any)  { m.each(func(c Console) { c.Error(args...) }) }
func (m *Multi) Table(args ...any)  { m.each(func(c Console) { c.Table(args...) }) }
func (m *Multi) Dir(args ...any)    { m.each(func(c Console) { c.Dir(args...) }) }
func (m *Multi) Dirxml(args ...any) { m.each(func(c Console) { c.Dirxml(args...) }) }
func (m *Multi) Group(args ...any)  { m.each(func(c Console) { c.Group(args...) }) }
func (m *Multi) GroupCollapsed(args ...any) {
	m.each(func(c Console) { c.GroupCollapsed(args...) })
}
func (m *Multi) GroupEnd(args ...any)   { m.each(func(c Console) { c.GroupEnd(args...) }) }
func (m *Multi) Count(args ...any)      { m.each(func(c Console) { c.Count(args...) }) }
func (m *Multi) Time(args ...any)       { m.each(func(c Console) { c.Time(args...) }) }
func (m *Multi) TimeEnd(args ...any)    { m.each(func(c Console) { c.TimeEnd(args...) }) }
func (m *Multi) TimeStamp(args ...any)  { m.each(func(c Console) { c.TimeStamp(args...) }) }
func (m *Multi) Profile(args ...any)    { m.each(func(c Console) { c.Profile(args...) }) }
func (m *Multi) ProfileEnd(args ...any) { m.each(func(c Console) { c.ProfileEnd(args...) }) }
func (m *Multi) Assert(args ...any)     { m.each(func(c Console) { c.Assert(args...) }) }
func (m *Multi) Clear(args ...any)      { m.each(func(c Console) { c.Clear(args...) }) }
