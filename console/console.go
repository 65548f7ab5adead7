package console

// Console is the output surface loggers forward to. Methods take the
// already-formatted prefix (when one applies) followed by the caller's
// original arguments. Implementations must tolerate any argument
// types; none of the methods report errors — output is best-effort.
type Console interface {
	// Log emits a plain line. Info and Debug calls on a logger land
	// here as well; the prefix already carries their styling.
	Log(args ...any)
	Warn(args ...any)
	Trace(args ...any)
	Error(args ...any)

	// Table renders tabular data (a slice of rows or a map).
	Table(args ...any)

	// Dir and Dirxml render a deep view of a single value.
	Dir(args ...any)
	Dirxml(args ...any)

	// Group/GroupCollapsed open a nested section closed by GroupEnd.
	// Backends without collapsible sections treat both the same.
	Group(args ...any)
	GroupCollapsed(args ...any)
	GroupEnd(args ...any)

	// Count reports how many times the given label has been counted.
	Count(args ...any)

	// Time starts a named timer; TimeEnd stops it and reports the
	// elapsed duration; TimeStamp emits a single instant marker.
	Time(args ...any)
	TimeEnd(args ...any)
	TimeStamp(args ...any)

	Profile(args ...any)
	ProfileEnd(args ...any)

	// Assert emits only when its first argument is falsy (false, nil,
	// zero, or empty string).
	Assert(args ...any)

	// Clear discards any visible output and resets structural state
	// (open groups, counters, timers).
	Clear(args ...any)
}

// Renderable marks values that reference a renderable host element
// (a widget, a DOM node behind a binding, and the like). Loggers wrap
// such values in a one-element []any before forwarding so that
// backends present them as inspectable data instead of flattening
// them to a string. In plain terminal programs nothing implements
// this, and the check never fires.
type Renderable interface {
	RenderableElement() any
}
