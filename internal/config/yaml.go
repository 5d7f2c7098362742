// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bitwise/internal/log"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file specified by path. If path
// is empty, it looks for DefaultConfigFile in the working directory and falls
// back to built-in defaults when that is missing. Environment overrides are
// applied after the file, then the result is validated.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		log.Debugf("configuration: loaded %s", path)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("log_level %q is not one of debug, info, warn, error, fatal", c.LogLevel))
	}
	if c.Width != 32 && c.Width != 64 {
		errs = append(errs, fmt.Errorf("width must be 32 or 64, got %d", c.Width))
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		errs = append(errs, fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output))
	}
	if c.MaxSubsetValues < 0 || c.MaxSubsetValues > MaxSubsetValues {
		errs = append(errs, fmt.Errorf("max_subset_values must be within [0, %d], got %d", MaxSubsetValues, c.MaxSubsetValues))
	}

	// Server Validation
	if !strings.Contains(c.Server.Address, ":") {
		errs = append(errs, fmt.Errorf("server.address %q appears invalid (missing port?)", c.Server.Address))
	}
	if !strings.HasPrefix(c.Server.Path, "/") {
		errs = append(errs, fmt.Errorf("server.path %q must start with '/'", c.Server.Path))
	}
	if c.Server.ReadBufferSize <= 0 || c.Server.WriteBufferSize <= 0 {
		errs = append(errs, errors.New("server buffer sizes must be positive"))
	}

	return errors.Join(errs...)
}

// applyEnvOverrides replaces fields with ENV_* variables when they are set
// and parse. Unparseable values are logged and ignored.
func (c *Config) applyEnvOverrides() {
	// ENV_LOG_LEVEL
	if val, ok := os.LookupEnv("ENV_LOG_LEVEL"); ok {
		c.LogLevel = val
		log.Debugf("configuration: overriding log_level from env: %s", val)
	}

	// ENV_WIDTH
	if val, ok := os.LookupEnv("ENV_WIDTH"); ok {
		if width, err := strconv.Atoi(val); err == nil {
			c.Width = width
			log.Debugf("configuration: overriding width from env: %d", width)
		} else {
			log.Warnf("configuration: ignoring ENV_WIDTH=%q: %v", val, err)
		}
	}

	// ENV_OUTPUT
	if val, ok := os.LookupEnv("ENV_OUTPUT"); ok {
		c.Output = val
		log.Debugf("configuration: overriding output from env: %s", val)
	}

	// ENV_SERVER_ADDRESS
	if val, ok := os.LookupEnv("ENV_SERVER_ADDRESS"); ok {
		c.Server.Address = val
		log.Debugf("configuration: overriding server.address from env: %s", val)
	}
}
