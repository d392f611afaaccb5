package config

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/rockpile/aoc"
	"github.com/rockpile/aoc/internal/rockfall"
)

const (
	EnvConfigPath = "AOC_CONFIG"
	EnvLogLevel   = "AOC_LOG_LEVEL"
)

var ErrInvalid = errors.New("invalid config")

// Config holds the day 17 run settings.
type Config struct {
	SmallTarget  int64  `yaml:"small_target"`
	LargeTarget  int64  `yaml:"large_target"`
	SkylineRows  int    `yaml:"skyline_rows"`
	DetectCycles *bool  `yaml:"detect_cycles"`
	Prune        *bool  `yaml:"prune"`
	LogLevel     string `yaml:"log_level"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML config at path. An empty path falls back to the
// AOC_CONFIG environment variable, and if that is unset too the defaults
// are returned. AOC_LOG_LEVEL overrides the file's log level.
func Load(path string) (*Config, error) {
	path = aoc.Or(path, os.Getenv(EnvConfigPath))

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.SmallTarget == 0 {
		cfg.SmallTarget = 2022
	}
	if cfg.LargeTarget == 0 {
		cfg.LargeTarget = 1_000_000_000_000
	}
	if cfg.SkylineRows == 0 {
		cfg.SkylineRows = rockfall.DefaultSkylineRows
	}
	if cfg.DetectCycles == nil {
		cfg.DetectCycles = ptr(true)
	}
	if cfg.Prune == nil {
		cfg.Prune = ptr(true)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func ptr[T any](v T) *T { return &v }

func (c *Config) Validate() error {
	if c.SmallTarget < 0 || c.LargeTarget < 0 {
		return fmt.Errorf("%w: targets must not be negative", ErrInvalid)
	}
	if c.SkylineRows < 1 || c.SkylineRows > rockfall.MaxSkylineRows {
		return fmt.Errorf("%w: skyline_rows %d not in [1, %d]", ErrInvalid, c.SkylineRows, rockfall.MaxSkylineRows)
	}
	return nil
}

// SimOptions returns simulator options for c.
func (c *Config) SimOptions() *rockfall.Options {
	opts := rockfall.DefaultOptions()
	opts.SkylineRows = c.SkylineRows
	opts.DetectCycles = c.DetectCycles == nil || *c.DetectCycles
	opts.Prune = c.Prune == nil || *c.Prune
	return opts
}
