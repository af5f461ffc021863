package config

import (
	"fmt"
	"os"
	"strconv"

	"crabsim/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the simulators. Fields left out of the file
// keep their defaults.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Combat   CombatConfig  `yaml:"combat"`
	Cubes    CubesConfig   `yaml:"cubes"`
	Tiles    TilesConfig   `yaml:"tiles"`
	Seating  SeatingConfig `yaml:"seating"`
}

type CombatConfig struct {
	ShortCircuit bool   `yaml:"short_circuit"`
	MaxRounds    int    `yaml:"max_rounds"`
	RecordsDir   string `yaml:"records_dir"`
}

type CubesConfig struct {
	Ticks      int    `yaml:"ticks"`
	Dimensions [2]int `yaml:"dimensions"`
	Glyph      string `yaml:"glyph"`
}

type TilesConfig struct {
	Days int `yaml:"days"`
}

type SeatingConfig struct {
	MaxTicks int `yaml:"max_ticks"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Combat: CombatConfig{
			ShortCircuit: false,
			MaxRounds:    meta.MAX_ROUNDS,
		},
		Cubes: CubesConfig{
			Ticks:      meta.CUBE_TICKS,
			Dimensions: meta.CUBE_DIMENSIONS,
			Glyph:      string(meta.ACTIVE_GLYPH),
		},
		Tiles:   TilesConfig{Days: meta.HEX_DAYS},
		Seating: SeatingConfig{MaxTicks: meta.MAX_SEATING_TICKS},
	}
}

// Load applies defaults, then the YAML file at path (if any), then
// environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CRABSIM_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CRABSIM_RECORDS_DIR"); v != "" {
		c.Combat.RecordsDir = v
	}
	if v := os.Getenv("CRABSIM_SHORT_CIRCUIT"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CRABSIM_SHORT_CIRCUIT: %w", err)
		}
		c.Combat.ShortCircuit = enabled
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Combat.MaxRounds <= 0 {
		return fmt.Errorf("combat.max_rounds must be positive, got %d", c.Combat.MaxRounds)
	}
	if c.Cubes.Ticks < 0 {
		return fmt.Errorf("cubes.ticks must not be negative, got %d", c.Cubes.Ticks)
	}
	for _, dim := range c.Cubes.Dimensions {
		if dim < 2 {
			return fmt.Errorf("cubes.dimensions must be at least 2, got %d", dim)
		}
	}
	if len([]rune(c.Cubes.Glyph)) != 1 || c.Cubes.Glyph == string(meta.INACTIVE_GLYPH) {
		return fmt.Errorf("cubes.glyph must be a single character other than %q, got %q", meta.INACTIVE_GLYPH, c.Cubes.Glyph)
	}
	if c.Tiles.Days < 0 {
		return fmt.Errorf("tiles.days must not be negative, got %d", c.Tiles.Days)
	}
	if c.Seating.MaxTicks <= 0 {
		return fmt.Errorf("seating.max_ticks must be positive, got %d", c.Seating.MaxTicks)
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// CubeGlyph returns the active glyph of the cube seed.
func (c Config) CubeGlyph() rune {
	return []rune(c.Cubes.Glyph)[0]
}
