// Package config loads editor settings from a TOML file.
//
// Settings cover the snap threshold, the equal-spacing tolerance, and
// per-kind default shape sizes. A missing file is not an error: every
// field falls back to the built-in defaults, so the zero configuration
// always works.
//
// Example slateboard.toml:
//
//	[snap]
//	threshold = 8
//	tolerance = 8
//
//	[shapes.circle]
//	width = 100
//	height = 100
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/slateboard/slateboard/pkg/align"
	"github.com/slateboard/slateboard/pkg/errors"
	"github.com/slateboard/slateboard/pkg/geom"
)

// DefaultFile is the config filename looked up in the working
// directory when no explicit path is given.
const DefaultFile = "slateboard.toml"

// Config holds all tunable editor settings.
type Config struct {
	Snap   Snap                 `toml:"snap"`
	Shapes map[string]ShapeSize `toml:"shapes"`
}

// Snap tunes the alignment engine.
type Snap struct {
	// Threshold is the guide detection distance in pixels.
	Threshold float64 `toml:"threshold"`
	// Tolerance is the equal-spacing detection tolerance in pixels.
	Tolerance float64 `toml:"tolerance"`
}

// ShapeSize is a per-kind default footprint.
type ShapeSize struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Snap: Snap{
			Threshold: align.DefaultThreshold,
			Tolerance: align.EqualTolerance,
		},
	}
}

// Load reads the configuration at path. A missing file yields the
// defaults with no error; a malformed file is an INVALID_INPUT error.
// Unset numeric fields fall back to their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	if cfg.Snap.Threshold <= 0 {
		cfg.Snap.Threshold = align.DefaultThreshold
	}
	if cfg.Snap.Tolerance <= 0 {
		cfg.Snap.Tolerance = align.EqualTolerance
	}
	return cfg, nil
}

// SizeDefaults merges the configured per-kind sizes over the built-in
// table for use with geom.ResolveSize.
func (c *Config) SizeDefaults() geom.SizeDefaults {
	out := make(geom.SizeDefaults, len(geom.DefaultSizes)+len(c.Shapes))
	for kind, dims := range geom.DefaultSizes {
		out[kind] = dims
	}
	for kind, s := range c.Shapes {
		if s.Width > 0 && s.Height > 0 {
			out[kind] = [2]float64{s.Width, s.Height}
		}
	}
	return out
}
