// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/ffi-greeter/src/cstring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the caller's environment.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvLogOutput, "")
	t.Setenv(EnvMaxNameBytes, "")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectConfigFormat(t *testing.T) {
	tests := []struct {
		path string
		want configFormat
	}{
		{"config.json", configFormatJSON},
		{"CONFIG.JSON", configFormatJSON},
		{"config.yaml", configFormatYAML},
		{"config.YML", configFormatYAML},
		{"config.toml", configFormatUnknown},
		{"config", configFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, detectConfigFormat(tt.path))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Zero(t, cfg.Greeter.MaxNameBytes, "unbounded unless configured")
	assert.True(t, cfg.Greeter.StrictUTF8)
	assert.Equal(t, LogOff, cfg.Log.Output)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantMax   int
		wantUTF8  bool
		wantLog   string
		wantError string
	}{
		{
			name:     "YAML",
			file:     "greeter.yaml",
			content:  "greeter:\n  maxNameBytes: 64\n  strictUTF8: false\nlog:\n  output: stderr\n",
			wantMax:  64,
			wantUTF8: false,
			wantLog:  LogStderr,
		},
		{
			name:     "JSON",
			file:     "greeter.json",
			content:  `{"greeter":{"maxNameBytes":128}}`,
			wantMax:  128,
			wantUTF8: true,
			wantLog:  LogOff,
		},
		{
			name:     "Negative bound resets to unbounded",
			file:     "greeter.yml",
			content:  "greeter:\n  maxNameBytes: -5\n",
			wantMax:  cstring.DefaultMaxNameBytes,
			wantUTF8: true,
			wantLog:  LogOff,
		},
		{
			name:      "Malformed JSON",
			file:      "broken.json",
			content:   `{"greeter":`,
			wantError: "failed to parse JSON config file",
		},
		{
			name:      "Malformed YAML",
			file:      "broken.yaml",
			content:   "greeter: [unclosed",
			wantError: "failed to parse YAML config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, tt.file, tt.content)

			cfg, err := Load(path)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMax, cfg.Greeter.MaxNameBytes)
			assert.Equal(t, tt.wantUTF8, cfg.Greeter.StrictUTF8)
			assert.Equal(t, tt.wantLog, cfg.Log.Output)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load("greeter.toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "greeter.yaml", "greeter:\n  maxNameBytes: 64\n")

	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvMaxNameBytes, "32")
	t.Setenv(EnvLogOutput, LogStdout)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Greeter.MaxNameBytes, "environment overrides the file")
	assert.Equal(t, LogStdout, cfg.Log.Output)

	t.Setenv(EnvMaxNameBytes, "lots")
	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvMaxNameBytes)
}

func TestGreeterBuilder(t *testing.T) {
	cfg := Default()
	cfg.Greeter.MaxNameBytes = 4

	g := cfg.GreeterBuilder().Build()
	assert.NoError(t, g.Validate(cstring.Borrowed("abcd")))
	assert.ErrorIs(t, g.Validate(cstring.Borrowed("abcde")), cstring.ErrUnterminated)

	unbounded := Default().GreeterBuilder().Build()
	assert.NoError(t, unbounded.Validate(cstring.Borrowed(strings.Repeat("a", 5000))))
}

func TestLogger(t *testing.T) {
	cfg := Default()

	for _, out := range []string{"", LogOff, "OFF", LogStderr, LogStdout} {
		cfg.Log.Output = out
		l, err := cfg.Logger()
		require.NoError(t, err, "output %q", out)
		assert.NotNil(t, l)
	}

	path := filepath.Join(t.TempDir(), "greeter.log")
	cfg.Log.Output = path

	l, err := cfg.Logger()
	require.NoError(t, err)
	l.Printf("greeting fallback: %s", "nil name")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"level":"info","message":"greeting fallback: nil name"}`))

	cfg.Log.Output = filepath.Join(t.TempDir(), "missing", "dir", "greeter.log")
	_, err = cfg.Logger()
	assert.Error(t, err)
}
