// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/ffi-greeter/src/cstring"
	"github.com/H0llyW00dzZ/ffi-greeter/src/logger"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the configuration file when no path is given.
	EnvConfigFile = "FFI_GREETER_CONFIG_FILE"
	// EnvLogOutput overrides log.output.
	EnvLogOutput = "FFI_GREETER_LOG"
	// EnvMaxNameBytes overrides greeter.maxNameBytes.
	EnvMaxNameBytes = "FFI_GREETER_MAX_NAME_BYTES"
)

// Log output destinations other than a file path.
const (
	LogOff    = "off"
	LogStderr = "stderr"
	LogStdout = "stdout"
)

// ErrUnknownFormat is returned for configuration files whose extension is not
// .json, .yaml or .yml.
var ErrUnknownFormat = errors.New("unsupported config file format")

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
	configFormatUnknown
)

// Config holds the settings shared by the library and the CLI.
type Config struct {
	// Greeter: Settings for the checked producer
	Greeter struct {
		// MaxNameBytes: Optional limit on how far the checked producer scans for
		// a NUL terminator; 0 means no limit
		MaxNameBytes int `json:"maxNameBytes" yaml:"maxNameBytes"`
		// StrictUTF8: Fall back on names that are not valid UTF-8
		StrictUTF8 bool `json:"strictUTF8" yaml:"strictUTF8"`
	} `json:"greeter" yaml:"greeter"`

	// Log: Where fallback diagnostics go
	Log struct {
		// Output: "off", "stderr", "stdout" or a file path
		Output string `json:"output" yaml:"output"`
	} `json:"log" yaml:"log"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.Greeter.MaxNameBytes = cstring.DefaultMaxNameBytes
	c.Greeter.StrictUTF8 = true
	c.Log.Output = LogOff
	return c
}

// detectConfigFormat determines the configuration file format based on file extension.
// The function uses case-insensitive extension matching for cross-platform compatibility.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	case ".json":
		return configFormatJSON
	default:
		return configFormatUnknown
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
// Keys missing from data keep the values already in config.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	case configFormatJSON:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	default:
		return ErrUnknownFormat
	}
	return nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - A pointer to the loaded Config struct with defaults applied
//   - An error if the file cannot be read or parsed, or an environment override is malformed
//
// Configuration Priority:
//  1. Default values are set
//  2. FFI_GREETER_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if a path is set)
//  4. Environment variables override config file values (FFI_GREETER_LOG, FFI_GREETER_MAX_NAME_BYTES)
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		format := detectConfigFormat(configPath)
		if format == configFormatUnknown {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Ext(configPath))
		}

		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvLogOutput); v != "" {
		config.Log.Output = v
	}
	if v := os.Getenv(EnvMaxNameBytes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvMaxNameBytes, err)
		}
		config.Greeter.MaxNameBytes = n
	}

	// Validate and set defaults for invalid values
	if config.Greeter.MaxNameBytes < 0 {
		config.Greeter.MaxNameBytes = cstring.DefaultMaxNameBytes
	}
	if config.Log.Output == "" {
		config.Log.Output = LogOff
	}

	return config, nil
}

// GreeterBuilder returns a builder preloaded with the greeter settings.
// Callers may chain further options, such as a logger, before Build.
func (c *Config) GreeterBuilder() *cstring.GreeterBuilder {
	return cstring.NewGreeterBuilder().
		WithMaxNameBytes(c.Greeter.MaxNameBytes).
		WithStrictUTF8(c.Greeter.StrictUTF8)
}

// Logger opens the configured log destination.
//
// A file destination is opened for appending and stays open for the life of
// the process, because the library has no shutdown hook.
func (c *Config) Logger() (*logger.JSONLogger, error) {
	switch strings.ToLower(c.Log.Output) {
	case "", LogOff:
		return logger.NewJSONLogger(nil, true), nil
	case LogStderr:
		return logger.NewJSONLogger(os.Stderr, false), nil
	case LogStdout:
		return logger.NewJSONLogger(os.Stdout, false), nil
	}

	f, err := os.OpenFile(c.Log.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger.NewJSONLogger(f, false), nil
}
