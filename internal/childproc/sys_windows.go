// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build windows

package childproc

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

type windowsProcess struct {
	info windows.ProcessInformation
}

func startProcess(cfg spawnConfig) (osProcess, error) {
	// CreateProcessW may rewrite the command line in place, so every spawn
	// gets its own freshly encoded, NUL-terminated buffer.
	cmdline, err := windows.UTF16FromString(cfg.command)
	if err != nil {
		return nil, err
	}

	var dir *uint16
	if cfg.dir != "" {
		dir, err = windows.UTF16PtrFromString(cfg.dir)
		if err != nil {
			return nil, err
		}
	}

	si := new(windows.StartupInfo)
	si.Cb = uint32(unsafe.Sizeof(*si))

	p := &windowsProcess{}
	err = windows.CreateProcess(
		nil,         // program resolved from the first command line token
		&cmdline[0], // mutable command line
		nil,         // default process security
		nil,         // default thread security
		cfg.inheritHandles,
		0,   // no creation flags
		nil, // inherit environment
		dir, // nil inherits the working directory
		si,
		&p.info,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *windowsProcess) pid() uint32 {
	return p.info.ProcessId
}

func (p *windowsProcess) await() error {
	_, err := windows.WaitForSingleObject(p.info.Process, windows.INFINITE)
	return err
}

func (p *windowsProcess) exitCode() (uint32, error) {
	var code uint32
	if err := windows.GetExitCodeProcess(p.info.Process, &code); err != nil {
		return 0, err
	}
	return code, nil
}

func (p *windowsProcess) terminate(code uint32) error {
	return windows.TerminateProcess(p.info.Process, code)
}

func (p *windowsProcess) close() error {
	return errors.Join(
		windows.CloseHandle(p.info.Thread),
		windows.CloseHandle(p.info.Process),
	)
}
