// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package childproc

import "strconv"

// ExitStatus is the exit code collected from a reaped child.
type ExitStatus struct {
	code uint32
}

// Success reports whether the child exited with code zero.
func (s ExitStatus) Success() bool {
	return s.code == 0
}

// Code returns the raw 32-bit exit code.
func (s ExitStatus) Code() uint32 {
	return s.code
}

func (s ExitStatus) String() string {
	return "exit status " + strconv.FormatUint(uint64(s.code), 10)
}
