// Package rules holds the process configuration that drives logger
// activation: the rules mapping, the namespace defaults, and the
// dev-mode flag.
//
// A rule key is either a bare namespace ("request") or a
// namespace.method pair ("request.error"). Resolution picks the most
// specific configured value; a namespace with no rule at all defaults
// to enabled. The dev-mode flag is a hard cutoff: when it is false no
// logger emits anything, regardless of rules.
//
// Configuration is layered. Programmatic rules applied via Apply merge
// over earlier ones (new entries win on collision). Rules supplied by
// the environment form a separate override layer that always wins,
// even over later Apply calls. Rules loaded from a TOML file go
// through Apply and therefore sit below the environment layer.
//
// All of this state lives in an explicitly owned Registry rather than
// package globals, so tests can work against a private instance and
// call Reset for isolation. The logger package maintains one shared
// default Registry, initialized from the environment on first use.
package rules
