// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build unix

package procgroup

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// Attr returns process attributes that make the child the leader of a new
// process group whose id equals its pid.
func Attr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

// Kill sends sig to every process in the group led by pid. The raw errno is
// returned, ESRCH included, so callers can tell a vanished group apart.
func Kill(pid int, sig unix.Signal) error {
	if pid <= 0 {
		return unix.ESRCH
	}
	// Negative pid addresses the group.
	return unix.Kill(-pid, sig)
}
