// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package childproc

const (
	// stillActive is the code GetExitCodeProcess reports for a process that
	// has not terminated yet (STILL_ACTIVE). A child that really exits with
	// this code is indistinguishable from a running one.
	stillActive uint32 = 259

	// killExitCode is the exit code forced on a child by Kill.
	killExitCode uint32 = 0
)

// spawnConfig is the snapshot of a Builder handed to process creation.
type spawnConfig struct {
	command        string
	inheritHandles bool
	dir            string
}

// osProcess is the handle pair returned by process creation. Every method
// returns the raw error of the OS call that failed, unwrapped.
type osProcess interface {
	pid() uint32
	// await blocks until the process has terminated.
	await() error
	// exitCode returns stillActive while the process is running.
	exitCode() (uint32, error)
	terminate(code uint32) error
	// close releases the process and thread handles.
	close() error
}

type startFunc func(spawnConfig) (osProcess, error)
