// Package config holds the tunable parameters of a trace request: trigger
// predicate sets per perspective, the pass cap, and pitch geometry. Values
// are supplied by the caller at invocation time, optionally read from a
// YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/franp/go-pitch-metrics/internal/pitch"
)

// Config is the top-level trace configuration.
type Config struct {
	// MaxPasses bounds pathological sequences: tracing aborts and discards
	// the partial sequence once a walk exceeds this many successful passes.
	MaxPasses int `yaml:"max_passes"`

	// SwapFlanks exchanges left/right when the observing team defends the
	// opposite end of the pitch.
	SwapFlanks bool `yaml:"swap_flanks"`

	AttackingBox Box    `yaml:"attacking_box"`
	Thirds       Breaks `yaml:"thirds"`
	Flanks       Breaks `yaml:"flanks"`

	// Predicates overrides the default trigger predicate set per perspective
	// (keys: defensive, offensive, buildup, setpiece). Empty means defaults.
	Predicates map[string][]string `yaml:"predicates"`
}

// Box is the attacking penalty-box region used for big-chance upgrades.
type Box struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// Breaks is a pair of breakpoints splitting a 0–100 axis into three bands.
type Breaks struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// Default returns the standard configuration.
func Default() Config {
	pc := pitch.DefaultConfig()
	return Config{
		MaxPasses:    40,
		AttackingBox: Box{MinX: pc.BoxMinX, MinY: pc.BoxMinY, MaxY: pc.BoxMaxY},
		Thirds:       Breaks{Lower: pc.ThirdLower, Upper: pc.ThirdUpper},
		Flanks:       Breaks{Lower: pc.FlankLower, Upper: pc.FlankUpper},
	}
}

// Load reads a YAML config file, layered over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the numeric parameters for sanity.
func (c Config) Validate() error {
	if c.MaxPasses <= 0 {
		return fmt.Errorf("max_passes must be positive, got %d", c.MaxPasses)
	}
	if c.Thirds.Lower <= 0 || c.Thirds.Upper >= 100 || c.Thirds.Lower >= c.Thirds.Upper {
		return fmt.Errorf("thirds breakpoints must satisfy 0 < lower < upper < 100, got %.2f/%.2f",
			c.Thirds.Lower, c.Thirds.Upper)
	}
	if c.Flanks.Lower <= 0 || c.Flanks.Upper >= 100 || c.Flanks.Lower >= c.Flanks.Upper {
		return fmt.Errorf("flanks breakpoints must satisfy 0 < lower < upper < 100, got %.2f/%.2f",
			c.Flanks.Lower, c.Flanks.Upper)
	}
	if c.AttackingBox.MinY >= c.AttackingBox.MaxY {
		return fmt.Errorf("attacking_box min_y must be below max_y, got %.2f/%.2f",
			c.AttackingBox.MinY, c.AttackingBox.MaxY)
	}
	return nil
}

// Pitch converts the geometry parameters to a pitch.Config.
func (c Config) Pitch() pitch.Config {
	return pitch.Config{
		ThirdLower: c.Thirds.Lower,
		ThirdUpper: c.Thirds.Upper,
		FlankLower: c.Flanks.Lower,
		FlankUpper: c.Flanks.Upper,
		BoxMinX:    c.AttackingBox.MinX,
		BoxMinY:    c.AttackingBox.MinY,
		BoxMaxY:    c.AttackingBox.MaxY,
	}
}

// PredicateNames returns the configured predicate names for the perspective
// key, or nil when the defaults should apply.
func (c Config) PredicateNames(perspective string) []string {
	if c.Predicates == nil {
		return nil
	}
	return c.Predicates[perspective]
}
