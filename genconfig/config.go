package genconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Config mirrors the generation-run configuration enumeration: the pattern
// radius, the output-size targets, and the expansion-cap derivation inputs.
type Config struct {
	Radius              int     `mapstructure:"radius"`
	SizeFactor          int     `mapstructure:"size_factor"`
	LowerCap            float64 `mapstructure:"lower_cap"`
	UpperCap            float64 `mapstructure:"upper_cap"`
	ExpansionPercentile float64 `mapstructure:"expansion_percentile"`
	ExpansionSlack      float64 `mapstructure:"expansion_slack"`
	RNGSeed             int64   `mapstructure:"rng_seed"`
}

// Load reads configuration from configPath (YAML/JSON, by extension), falling
// back to defaults plus environment-variable overrides when configPath is
// empty or missing, then validates the result.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("genconfig: reading config file: %w", err)
			}
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("genconfig: unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromReader loads configType-formatted content (useful for tests),
// applying the same defaults and validation as Load.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("genconfig: reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("genconfig: unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("expansion_percentile", 0.9)
	v.SetDefault("expansion_slack", 1.1)
}

// Validate enforces the Configuration enumeration's bounds. It is the single
// source of truth a Generator constructor calls before starting a run.
func (c *Config) Validate() error {
	if c.Radius < 1 {
		return fmt.Errorf("genconfig: radius must be >= 1, got %d: %w", c.Radius, ErrInvalidInput)
	}
	if c.SizeFactor < 1 {
		return fmt.Errorf("genconfig: size_factor must be >= 1, got %d: %w", c.SizeFactor, ErrInvalidInput)
	}
	if c.LowerCap <= 0 || c.LowerCap > 1 {
		return fmt.Errorf("genconfig: lower_cap must be in (0, 1], got %v: %w", c.LowerCap, ErrInvalidInput)
	}
	if c.UpperCap < 1 {
		return fmt.Errorf("genconfig: upper_cap must be >= 1, got %v: %w", c.UpperCap, ErrInvalidInput)
	}
	if c.ExpansionPercentile < 0 || c.ExpansionPercentile > 1 {
		return fmt.Errorf("genconfig: expansion_percentile must be in [0, 1], got %v: %w", c.ExpansionPercentile, ErrInvalidInput)
	}
	if c.ExpansionSlack < 1 {
		return fmt.Errorf("genconfig: expansion_slack must be >= 1, got %v: %w", c.ExpansionSlack, ErrInvalidInput)
	}
	return nil
}
