// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osa030/playaxis/internal/domain/settings"
	"github.com/osa030/playaxis/internal/host"
)

// Environment variables that take precedence over file values.
const (
	EnvLogLevel       = "PLAYAXIS_LOG_LEVEL"
	EnvTimeIntervalMs = "PLAYAXIS_TIME_INTERVAL_MS"
)

// Config represents the application configuration.
type Config struct {
	Log     LogConfig    `yaml:"log"`
	Data    DataConfig   `yaml:"data"`
	Objects host.Objects `yaml:"objects"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Output string `yaml:"output" default:"stderr"`
}

// DataConfig describes the category column fed to the visual.
// Either Values or Range must be given; Values wins when both are.
type DataConfig struct {
	Field  string      `yaml:"field" default:"Year" validate:"required"`
	Values []string    `yaml:"values"`
	Range  RangeConfig `yaml:"range"`
}

// RangeConfig generates integer categories From..To inclusive.
type RangeConfig struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Step int `yaml:"step" default:"1" validate:"gte=1"`
}

// IsSet reports whether a range was configured.
func (r RangeConfig) IsSet() bool {
	return r.From != 0 || r.To != 0
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse builds a configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvTimeIntervalMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvTimeIntervalMs)
		}
		if c.Objects == nil {
			c.Objects = host.Objects{}
		}
		if c.Objects[settings.GroupTransition] == nil {
			c.Objects[settings.GroupTransition] = map[string]any{}
		}
		c.Objects[settings.GroupTransition]["timeInterval"] = ms
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if err := c.validateData(); err != nil {
		return err
	}

	return nil
}

// validateData checks that the data section yields at least one category.
func (c *Config) validateData() error {
	if len(c.Data.Values) > 0 {
		return nil
	}
	if !c.Data.Range.IsSet() {
		return errors.New("data: either values or range is required")
	}
	if c.Data.Range.To < c.Data.Range.From {
		return errors.Newf("data: range to (%d) must not be before from (%d)", c.Data.Range.To, c.Data.Range.From)
	}
	return nil
}

// Categories returns the configured category values in order.
func (c *Config) Categories() []any {
	if len(c.Data.Values) > 0 {
		values := make([]any, len(c.Data.Values))
		for i, v := range c.Data.Values {
			values[i] = v
		}
		return values
	}

	r := c.Data.Range
	step := r.Step
	if step < 1 {
		step = 1
	}
	var values []any
	for v := r.From; v <= r.To; v += step {
		values = append(values, v)
	}
	return values
}
