package rules

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys consulted by FromEnv and Refresh.
const (
	// EnvDev gates all output. Unset means dev-mode on; any value
	// strconv.ParseBool rejects is treated as unset.
	EnvDev = "LOGGER_DEV"

	// EnvRules carries the override rules layer as comma-separated
	// key=bool pairs, e.g. "request=true,request.error=false".
	EnvRules = "LOGGER_RULES"
)

// FromEnv creates a Registry seeded from the environment. A .env file
// in the working directory is loaded first when present (it never
// overrides variables already set in the process environment).
func FromEnv() *Registry {
	_ = godotenv.Load()
	r := New()
	r.Refresh()
	return r
}

// Refresh re-reads LOGGER_DEV and LOGGER_RULES and replaces the
// dev-mode flag and the override layer accordingly. Rules applied
// programmatically are untouched.
func (r *Registry) Refresh() {
	dev := true
	if raw, ok := os.LookupEnv(EnvDev); ok {
		if v, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			dev = v
		}
	}
	r.SetDevMode(dev)
	r.setOverride(parsePairs(os.Getenv(EnvRules)))
}

// parsePairs parses "key=bool,key=bool" into a rules map. Pairs with
// a missing '=', an empty key, or a non-boolean value are skipped;
// malformed configuration silently falls back to whatever the lower
// layers resolve.
func parsePairs(raw string) map[string]bool {
	out := make(map[string]bool)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		eq := strings.Index(pair, "=")
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(pair[:eq])
		val, err := strconv.ParseBool(strings.TrimSpace(pair[eq+1:]))
		if key == "" || err != nil {
			continue
		}
		out[key] = val
	}
	return out
}
