// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build windows

package childproc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

var testCommands = struct {
	exitZero  string
	exitThree string
	longLived string
	reportCwd string
}{
	exitZero:  "cmd /c exit 0",
	exitThree: "cmd /c exit 3",
	longLived: "ping -n 30 127.0.0.1",
	reportCwd: "cmd /c cd > cwd.txt",
}

// terminateExternally stops pid the way an unrelated process would.
func terminateExternally(t *testing.T, pid uint32) {
	t.Helper()
	h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, pid)
	require.NoError(t, err)
	defer windows.CloseHandle(h)
	require.NoError(t, windows.TerminateProcess(h, 1))
}
