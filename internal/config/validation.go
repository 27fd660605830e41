// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"github.com/ManuGH/childproc/internal/validate"
)

// Validate validates an AppConfig using the centralized validation package
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.OneOf("logLevel", cfg.LogLevel, validate.LogLevels)
	v.ExistingDirectory("workingDir", cfg.WorkingDir)
	v.PositiveDuration("pollInterval", cfg.PollInterval)
	v.NonNegativeDuration("killAfter", cfg.KillAfter)

	return v.Err()
}
