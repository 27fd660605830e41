// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID   = "run_id"
	FieldSpawnID = "spawn_id"
	FieldPID     = "pid"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldCommand   = "command"
	FieldExitCode  = "exit_code"
	FieldReapPath  = "reap_path"

	// Path fields
	FieldPath = "path"
	FieldDir  = "dir"
)
