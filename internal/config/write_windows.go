// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build windows

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ManuGH/childproc/internal/log"
)

// WriteFile writes cfg to path as YAML using temp file + rename.
// Windows has no fsync-before-rename guarantee, so the replace is best-effort atomic.
func WriteFile(path string, cfg AppConfig) error {
	logger := log.WithComponent("config")

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".childproc-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write config data: %w", err)
	}

	// Close before rename (Windows requires this)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename config file: %w", err)
	}

	logger.Info().
		Str(log.FieldEvent, "config.written").
		Str(log.FieldPath, path).
		Msg("configuration file written")
	return nil
}
