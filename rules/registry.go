package rules

import "sync"

// Defaults are the construction defaults applied to loggers that do
// not specify their own name or debug flag.
type Defaults struct {
	Name  string
	Debug bool
}

// Registry owns the activation rules, the namespace defaults, and the
// dev-mode flag shared by a set of loggers. The zero value is not
// usable; create one with New or FromEnv.
//
// A Registry is safe for concurrent use. Writers replace entries
// in-place; readers observe the latest completed write (last write
// wins, which is all the activation model needs).
type Registry struct {
	mu       sync.RWMutex
	rules    map[string]bool
	override map[string]bool
	devMode  bool
	defaults Defaults
}

// New creates an empty Registry: dev-mode on, no rules, defaults
// name "logger" / debug true.
func New() *Registry {
	return &Registry{
		rules:    make(map[string]bool),
		override: make(map[string]bool),
		devMode:  true,
		defaults: Defaults{Name: "logger", Debug: true},
	}
}

// Apply merges patch into the programmatic rules layer. Entries in
// patch win over previously applied entries with the same key.
// Environment-supplied rules still take precedence at resolution
// time, so an Apply call can never shadow them.
func (r *Registry) Apply(patch map[string]bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range patch {
		r.rules[k] = v
	}
}

// Resolve returns the configured activation value for namespace name
// and (optionally) method, and whether any rule matched. The
// namespace.method rule is consulted before the bare namespace rule;
// within each key the environment override layer wins.
func (r *Registry) Resolve(name, method string) (bool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if method != "" {
		if v, ok := r.lookup(name + "." + method); ok {
			return v, true
		}
	}
	if v, ok := r.lookup(name); ok {
		return v, true
	}
	return false, false
}

// lookup reads a single key across both layers. Callers hold r.mu.
func (r *Registry) lookup(key string) (bool, bool) {
	if v, ok := r.override[key]; ok {
		return v, true
	}
	if v, ok := r.rules[key]; ok {
		return v, true
	}
	return false, false
}

// DevMode reports the process-wide dev-mode flag.
func (r *Registry) DevMode() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.devMode
}

// SetDevMode sets the process-wide dev-mode flag.
func (r *Registry) SetDevMode(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devMode = on
}

// Defaults returns the current construction defaults.
func (r *Registry) Defaults() Defaults {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults
}

// SetDefaults replaces the construction defaults. An empty Name keeps
// the current one.
func (r *Registry) SetDefaults(d Defaults) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.Name == "" {
		d.Name = r.defaults.Name
	}
	r.defaults = d
}

// setOverride replaces the environment override layer.
func (r *Registry) setOverride(rules map[string]bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.override = rules
}

// Reset clears all rules and overrides and restores the initial
// dev-mode and defaults. Intended for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = make(map[string]bool)
	r.override = make(map[string]bool)
	r.devMode = true
	r.defaults = Defaults{Name: "logger", Debug: true}
}
