// Package config loads the optional graphite.toml manifest that tunes
// plotting defaults and output rendering. Everything here has a usable
// zero-configuration default: the manifest is a convenience, not a
// requirement.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file searched for, from the start directory upward.
const ManifestName = "graphite.toml"

// Config is the decoded manifest.
type Config struct {
	Plot   PlotConfig   `toml:"plot"`
	Output OutputConfig `toml:"output"`
}

// PlotConfig tunes domain sampling.
type PlotConfig struct {
	// Samples is the number of domain and parametric samples per line.
	Samples int `toml:"samples"`
	// XMin and XMax bound the default x-axis interval.
	XMin float64 `toml:"xmin"`
	XMax float64 `toml:"xmax"`
}

// OutputConfig tunes how results and diagnostics are rendered.
type OutputConfig struct {
	// Format is the plot export encoding: "json" or "msgpack".
	Format string `toml:"format"`
	// Color controls ANSI color in diagnostics: "auto", "always", "never".
	Color string `toml:"color"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Plot:   PlotConfig{Samples: 1000, XMin: -10, XMax: 10},
		Output: OutputConfig{Format: "json", Color: "auto"},
	}
}

// Find walks up from startDir to locate the manifest.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load finds and decodes the manifest, filling omitted fields from the
// defaults. A missing manifest is not an error: the defaults come back with
// ok=false.
func Load(startDir string) (Config, bool, error) {
	cfg := Default()

	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return cfg, false, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), false, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, true, nil
}

func (c Config) validate() error {
	if c.Plot.Samples <= 0 {
		return fmt.Errorf("plot.samples must be positive, got %d", c.Plot.Samples)
	}
	if c.Plot.XMin >= c.Plot.XMax {
		return fmt.Errorf("plot.xmin must be below plot.xmax, got [%v, %v]", c.Plot.XMin, c.Plot.XMax)
	}
	switch c.Output.Format {
	case "json", "msgpack":
	default:
		return fmt.Errorf("output.format must be json or msgpack, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", c.Output.Color)
	}
	return nil
}
