// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build unix

package childproc

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

var testCommands = struct {
	exitZero  string
	exitThree string
	longLived string
	reportCwd string
}{
	exitZero:  "exit 0",
	exitThree: "exit 3",
	longLived: "exec sleep 30",
	reportCwd: "pwd -P > cwd.txt",
}

// terminateExternally stops pid the way an unrelated process would.
func terminateExternally(t *testing.T, pid uint32) {
	t.Helper()
	require.NoError(t, syscall.Kill(int(pid), syscall.SIGTERM))
}
