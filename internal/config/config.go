// Package config loads the settings of the keypad command line tool from a
// YAML file, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all keypad tool settings.
type Config struct {
	// Robots is the chain depth used by commands that take a single depth.
	Robots int `yaml:"robots" validate:"gte=0,lte=60"`

	// Parts lists the chain depths the solve command reports, in order.
	Parts []Part `yaml:"parts" validate:"min=1,dive"`

	// Workers bounds how many codes are evaluated concurrently. Zero means
	// one per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Input is the puzzle input file; "-" reads standard input.
	Input string `yaml:"input" validate:"required"`

	Logging LoggingConfig `yaml:"logging"`
}

// Part names one depth the solve command evaluates.
type Part struct {
	Name   string `yaml:"name" validate:"required"`
	Robots int    `yaml:"robots" validate:"gte=0,lte=60"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Environment variables that override file settings.
const (
	EnvRobots   = "KEYPAD_ROBOTS"
	EnvWorkers  = "KEYPAD_WORKERS"
	EnvLogLevel = "KEYPAD_LOG_LEVEL"
	EnvInput    = "KEYPAD_INPUT"
)

// Default returns the settings used when no file is given: the two classic
// parts with two and twenty-five robots.
func Default() *Config {
	return &Config{
		Robots: 2,
		Parts: []Part{
			{Name: "part1", Robots: 2},
			{Name: "part2", Robots: 25},
		},
		Workers: 0,
		Input:   "-",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks the struct tags and returns one error listing every
// offending field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %w", errors.Join(errs...))
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvRobots); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRobots, err)
		}
		c.Robots = n
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	return nil
}
