// Package config holds the tunables of the value-generation pipeline and the
// logger built from them.
//
// Configuration is plain YAML:
//
//	maxDependencyDepth: 3
//	forceAccess: true
//	cache: true
//	logLevel: debug
//	logFormat: json
//
// The same settings can be overlaid from OGEN_* environment variables and
// dotenv files with FromEnv and ApplyEnv.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// MaxDependencyDepth is the fixed upper bound of the dependency depth budget.
	MaxDependencyDepth = 5

	// DefaultDependencyDepth is used when no depth is configured.
	DefaultDependencyDepth = 2
)

// ErrDepthOutOfRange is returned for a dependency depth outside [0, MaxDependencyDepth].
var ErrDepthOutOfRange = errors.New("config: dependency depth out of range")

// Config configures the default pipeline.
type Config struct {
	// MaxDependencyDepth bounds nested constructor resolution (0..MaxDependencyDepth).
	MaxDependencyDepth int `yaml:"maxDependencyDepth"`

	// ForceAccess lets field-wise constructors set unexported fields.
	ForceAccess bool `yaml:"forceAccess"`

	// Cache memoizes one value per type.
	Cache bool `yaml:"cache"`

	// LogLevel is a logrus level name ("debug", "info", "warn", ...).
	LogLevel string `yaml:"logLevel"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"logFormat"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MaxDependencyDepth: DefaultDependencyDepth,
		Cache:              true,
		LogLevel:           "warn",
		LogFormat:          "text",
	}
}

// Validate rejects out-of-range settings.
func (c Config) Validate() error {
	return ValidateDepth(c.MaxDependencyDepth)
}

// ValidateDepth rejects depth budgets outside [0, MaxDependencyDepth].
func ValidateDepth(depth int) error {
	if depth < 0 || depth > MaxDependencyDepth {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrDepthOutOfRange, depth, MaxDependencyDepth)
	}
	return nil
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
