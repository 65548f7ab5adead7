package rules

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML rules file layout:
//
//	dev = true
//
//	[defaults]
//	name = "logger"
//	debug = true
//
//	[rules]
//	"request" = true
//	"request.error" = false
//
// Rules are decoded as any so that a non-boolean value spoils only
// its own entry, not the whole file.
type fileConfig struct {
	Dev      *bool          `toml:"dev"`
	Defaults *fileDefaults  `toml:"defaults"`
	Rules    map[string]any `toml:"rules"`
}

type fileDefaults struct {
	Name  *string `toml:"name"`
	Debug *bool   `toml:"debug"`
}

// LoadFile reads a TOML rules file and merges it into the registry:
// rules go through Apply (so the environment override layer still
// wins), dev and defaults replace the current values when present.
// A missing file is not an error; the registry is left unchanged.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading rules file: %w", err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("unmarshaling rules file: %w", err)
	}

	patch := make(map[string]bool, len(cfg.Rules))
	for k, v := range cfg.Rules {
		if b, ok := v.(bool); ok {
			patch[k] = b
		}
	}
	r.Apply(patch)

	if cfg.Dev != nil {
		r.SetDevMode(*cfg.Dev)
	}
	if cfg.Defaults != nil {
		d := r.Defaults()
		if cfg.Defaults.Name != nil {
			d.Name = *cfg.Defaults.Name
		}
		if cfg.Defaults.Debug != nil {
			d.Debug = *cfg.Defaults.Debug
		}
		r.SetDefaults(d)
	}
	return nil
}
