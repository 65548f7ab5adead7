// Package console defines the backend interface loggers forward to,
// mirroring the surface of a host console: leveled output methods plus
// the structural calls (groups, counters, timers, assertions).
//
// Implementations in this module:
//
//   - term.Console: writes to a terminal (the default backend)
//   - zapconsole.Console: forwards to a zap SugaredLogger
//   - Null: discards everything
//   - Recorder: captures calls for assertions in tests
//   - Multi: fans out to several backends
//
// Loggers never write bytes themselves; all rendering happens behind
// this interface, so swapping the backend changes where and how every
// namespace emits without touching call sites.
package console
