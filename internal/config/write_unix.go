// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build !windows

package config

import (
	"fmt"

	"github.com/google/renameio/v2"

	"github.com/ManuGH/childproc/internal/log"
)

// WriteFile atomically writes cfg to path as YAML: the document goes to a
// pending file that is fsynced and renamed over path.
func WriteFile(path string, cfg AppConfig) error {
	logger := log.WithComponent("config")

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o600))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending config file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write config data: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}

	logger.Info().
		Str(log.FieldEvent, "config.written").
		Str(log.FieldPath, path).
		Msg("configuration file written")
	return nil
}
