// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build unix

package procgroup

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestKillGroup(t *testing.T) {
	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	require.NoError(t, err)
	defer null.Close()

	// the shell does not exec, so sleep is a grandchild in the same group
	proc, err := os.StartProcess("/bin/sh", []string{"sh", "-c", "sleep 30; sleep 30"}, &os.ProcAttr{
		Files: []*os.File{null, null, null},
		Sys:   Attr(),
	})
	require.NoError(t, err)

	pgid, err := unix.Getpgid(proc.Pid)
	require.NoError(t, err)
	require.Equal(t, proc.Pid, pgid, "child should lead its own group")

	require.NoError(t, Kill(proc.Pid, unix.SIGKILL))
	state, err := proc.Wait()
	require.NoError(t, err)

	ws, ok := state.Sys().(syscall.WaitStatus)
	require.True(t, ok)
	assert.True(t, ws.Signaled())
	assert.Equal(t, syscall.SIGKILL, ws.Signal())
}

func TestKillVanishedGroup(t *testing.T) {
	assert.ErrorIs(t, Kill(0, unix.SIGKILL), unix.ESRCH)
	assert.ErrorIs(t, Kill(-5, unix.SIGKILL), unix.ESRCH)
}
