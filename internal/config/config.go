// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"time"

	"github.com/ManuGH/childproc/internal/childproc"
)

// Environment variable names.
const (
	EnvLogLevel       = "CHILDPROC_LOG_LEVEL"
	EnvInheritHandles = "CHILDPROC_INHERIT_HANDLES"
	EnvWorkingDir     = "CHILDPROC_DIR"
	EnvPollInterval   = "CHILDPROC_POLL_INTERVAL"
	EnvKillAfter      = "CHILDPROC_KILL_AFTER"
)

// DefaultPollInterval is the TryWait pacing used while a kill deadline is pending.
const DefaultPollInterval = 100 * time.Millisecond

// AppConfig is the effective configuration of the CLI.
type AppConfig struct {
	LogLevel       string        `yaml:"logLevel" json:"logLevel"`
	InheritHandles bool          `yaml:"inheritHandles" json:"inheritHandles"`
	WorkingDir     string        `yaml:"workingDir,omitempty" json:"workingDir,omitempty"`
	PollInterval   time.Duration `yaml:"pollInterval" json:"pollInterval"`
	KillAfter      time.Duration `yaml:"killAfter" json:"killAfter"`

	Version string `yaml:"-" json:"version,omitempty"`
}

// FileConfig mirrors the YAML file. Pointer fields distinguish "unset" from
// zero values so that the file only overrides what it names.
type FileConfig struct {
	LogLevel       string         `yaml:"logLevel,omitempty"`
	InheritHandles *bool          `yaml:"inheritHandles,omitempty"`
	WorkingDir     string         `yaml:"workingDir,omitempty"`
	PollInterval   *time.Duration `yaml:"pollInterval,omitempty"`
	KillAfter      *time.Duration `yaml:"killAfter,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		LogLevel:       "info",
		InheritHandles: childproc.DefaultInheritHandles,
		PollInterval:   DefaultPollInterval,
	}
}

// Builder returns a process builder for command configured with cfg.
func (c AppConfig) Builder(command string) childproc.Builder {
	return childproc.New(command).
		InheritHandles(c.InheritHandles).
		CurrentDir(c.WorkingDir)
}
