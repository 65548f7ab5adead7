// Package term implements the console backend that ships as the
// default: synchronous, mutex-guarded writes to an io.Writer
// (os.Stdout unless configured otherwise).
//
// Structural calls carry real behavior here: Group/GroupEnd indent
// subsequent lines, Count keeps per-label counters, Time/TimeEnd
// measure wall-clock durations, Trace appends caller frames, and
// Table renders rows with lipgloss. Clear wipes the screen when the
// writer is an interactive terminal and only resets structural state
// otherwise, so redirected output never receives escape garbage.
package term
