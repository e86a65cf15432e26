// Package config loads robots settings through Viper from an optional
// YAML file, ROBOTS_ environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"robots/internal/geometry"
	"robots/internal/instruction"
	"robots/internal/observe"
)

// EnvPrefix prefixes every environment override, e.g. ROBOTS_LOG_LEVEL.
const EnvPrefix = "ROBOTS"

// MaxCoordinateLimit caps grid.max_coordinate so a drawn grid stays bounded.
const MaxCoordinateLimit = 10000

type Config struct {
	Grid        GridConfig        `mapstructure:"grid"`
	Instruction InstructionConfig `mapstructure:"instruction"`
	Navigate    NavigateConfig    `mapstructure:"navigate"`
	Log         LogConfig         `mapstructure:"log"`
	Output      OutputConfig      `mapstructure:"output"`
}

type GridConfig struct {
	MaxCoordinate int `mapstructure:"max_coordinate"`
}

type InstructionConfig struct {
	MaxLength int `mapstructure:"max_length"`
}

type NavigateConfig struct {
	MaxLength int `mapstructure:"max_length"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Draw   bool   `mapstructure:"draw"`
}

// SetDefaults registers the default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("grid.max_coordinate", geometry.MaximumValue)
	v.SetDefault("instruction.max_length", instruction.MaxLength)
	v.SetDefault("navigate.max_length", instruction.MaxNavigateLength)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", string(observe.FormatText))
	v.SetDefault("output.draw", false)
}

// New returns a Viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Grid.MaxCoordinate < 0 || c.Grid.MaxCoordinate > MaxCoordinateLimit {
		return fmt.Errorf("grid.max_coordinate must be between 0 and %d, got %d", MaxCoordinateLimit, c.Grid.MaxCoordinate)
	}
	if c.Instruction.MaxLength <= 0 {
		return fmt.Errorf("instruction.max_length must be positive, got %d", c.Instruction.MaxLength)
	}
	if c.Navigate.MaxLength <= 0 {
		return fmt.Errorf("navigate.max_length must be positive, got %d", c.Navigate.MaxLength)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if _, err := observe.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}
