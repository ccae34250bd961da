package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv and ApplyEnv.
const (
	EnvMaxDependencyDepth = "OGEN_MAX_DEPENDENCY_DEPTH"
	EnvForceAccess        = "OGEN_FORCE_ACCESS"
	EnvCache              = "OGEN_CACHE"
	EnvLogLevel           = "OGEN_LOG_LEVEL"
	EnvLogFormat          = "OGEN_LOG_FORMAT"
)

// FromEnv returns Default overlaid with the OGEN_* variables of the process
// environment and of the given dotenv files (".env" if none, skipped when
// missing). Process variables win over file entries. The process environment
// is never modified.
func FromEnv(envFiles ...string) (Config, error) {
	return ApplyEnv(Default(), envFiles...)
}

// ApplyEnv overlays c with the OGEN_* variables, see FromEnv, and validates
// the result.
func ApplyEnv(c Config, envFiles ...string) (Config, error) {
	optional := len(envFiles) == 0
	if optional {
		envFiles = []string{".env"}
	}
	fileEnv, err := godotenv.Read(envFiles...)
	if err != nil {
		if !optional || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read env files: %w", err)
		}
		fileEnv = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok && v != ""
	}

	if v, ok := lookup(EnvMaxDependencyDepth); ok {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvMaxDependencyDepth, err)
		}
		c.MaxDependencyDepth = depth
	}
	if v, ok := lookup(EnvForceAccess); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvForceAccess, err)
		}
		c.ForceAccess = b
	}
	if v, ok := lookup(EnvCache); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvCache, err)
		}
		c.Cache = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.LogFormat = v
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
