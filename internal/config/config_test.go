// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/childproc/internal/validate"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := NewLoader("", "test").Load()
	require.NoError(t, err)

	want := Defaults()
	want.Version = "test"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, cfg.InheritHandles)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, strings.Join([]string{
		"logLevel: debug",
		"inheritHandles: true",
		"workingDir: " + dir,
		"pollInterval: 250ms",
		"killAfter: 3s",
	}, "\n"))

	cfg, err := NewLoader(path, "v1").Load()
	require.NoError(t, err)

	want := AppConfig{
		LogLevel:       "debug",
		InheritHandles: true,
		WorkingDir:     dir,
		PollInterval:   250 * time.Millisecond,
		KillAfter:      3 * time.Second,
		Version:        "v1",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "killAfter: 1s\n")

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.KillAfter)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "inheritHandles: false\npollInterval: 1s\n")
	t.Setenv(EnvInheritHandles, "yes")
	t.Setenv(EnvPollInterval, "20ms")
	t.Setenv(EnvLogLevel, "warn")

	loader := NewLoader(path, "")
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.True(t, cfg.InheritHandles)
	assert.Equal(t, 20*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Contains(t, loader.ConsumedEnvKeys, EnvKillAfter)
	assert.Contains(t, loader.ConsumedEnvKeys, EnvWorkingDir)
}

func TestLoad_UnknownKeyFails(t *testing.T) {
	path := writeConfig(t, "inheritHandle: true\n")

	_, err := NewLoader(path, "").Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownConfigField), "got %v", err)
}

func TestLoad_MultipleDocumentsFail(t *testing.T) {
	path := writeConfig(t, "logLevel: info\n---\nlogLevel: debug\n")

	_, err := NewLoader(path, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple documents")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	_, err := NewLoader(path, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
}

func TestLoad_ValidationFails(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad log level", "logLevel: loud\n", "logLevel"},
		{"missing working dir", "workingDir: /definitely/not/here/7f3a\n", "workingDir"},
		{"zero poll interval", "pollInterval: 0s\n", "pollInterval"},
		{"negative kill after", "killAfter: -1s\n", "killAfter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(writeConfig(t, tt.body), "").Load()
			require.Error(t, err)

			var verr validate.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			require.Len(t, verr.Errors(), 1)
			assert.Equal(t, tt.field, verr.Errors()[0].Field)
		})
	}
}

func TestAppConfigBuilder(t *testing.T) {
	cfg := Defaults()
	cfg.InheritHandles = true
	cfg.WorkingDir = "/srv"

	b := cfg.Builder("tool --flag")
	assert.Equal(t, "tool --flag", b.Command())
	assert.True(t, b.InheritsHandles())
	assert.Equal(t, "/srv", b.Dir())
}
