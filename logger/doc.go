// Package logger is the public API of the module. Most users only
// need to import this package.
//
// A Logger wraps a console backend with a namespace: every line it
// emits starts with a colored "[name]:" prefix, and every call is
// gated by the activation rules shared through a rules.Registry.
// Rules address either a whole namespace ("request") or one method
// within it ("request.error"); the most specific rule wins, absence
// of rules means enabled, and the process-wide dev-mode flag cuts
// everything off when false.
//
// The package keeps one default registry, seeded from the environment
// (LOGGER_DEV, LOGGER_RULES, an optional .env file) on first use, and
// a default Logger the package-level functions delegate to, so simple
// programs can log without any setup:
//
//	logger.ConfigureRules(map[string]bool{"request.debug": false})
//	l := logger.New("request")
//	l.Log("GET /users", 200)
//
// Error is the one method that never reaches the backend: it always
// returns a non-nil error built from its arguments, regardless of
// activation, so an error-level call is a failure signal rather than
// an output statement.
package logger
