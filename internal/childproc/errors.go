// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package childproc

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrCreationFailed is reported when the OS rejects process creation.
	ErrCreationFailed = errors.New("cannot create child process")
	// ErrWaitFailed is reported when blocking on process completion fails.
	ErrWaitFailed = errors.New("cannot wait for child process")
	// ErrGetExitCodeFailed is reported when the exit code cannot be queried.
	ErrGetExitCodeFailed = errors.New("cannot get exit code of child process")
	// ErrKillFailed is reported when termination is rejected, most commonly
	// because the process already exited.
	ErrKillFailed = errors.New("cannot kill child process")

	// ErrReleased is reported together with one of the kinds above when an
	// operation is attempted after the handles were released by a reap.
	ErrReleased = errors.New("process handles already released")
)

// OSError describes a failed operation on a child process.
type OSError struct {
	// Op is the failure kind, one of the Err*Failed sentinels.
	Op error
	// Code is the platform diagnostic code (Win32 error or errno) of the call
	// that failed. Zero when no OS call was made.
	Code uint32
	// Err is the underlying cause.
	Err error
}

func (e *OSError) Error() string {
	if e.Code == 0 {
		return fmt.Sprintf("%v: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%v: %v (code %d)", e.Op, e.Err, e.Code)
}

// Unwrap exposes both the failure kind and the cause to errors.Is and errors.As.
func (e *OSError) Unwrap() []error {
	return []error{e.Op, e.Err}
}

// newOSError classifies err under op. The diagnostic code is taken from the
// error value returned by the failing call itself, never from ambient state.
func newOSError(op, err error) *OSError {
	return &OSError{Op: op, Code: errorCode(err), Err: err}
}

func releasedError(op error) *OSError {
	return &OSError{Op: op, Err: ErrReleased}
}

func errorCode(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
