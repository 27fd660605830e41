// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build unix

package childproc

import (
	"os"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/ManuGH/childproc/internal/procgroup"
)

const shellPath = "/bin/sh"

// unixProcess runs the command line through /bin/sh -c, which resolves the
// first token with the shell's PATH search. The shell leads its own process
// group and terminate signals the whole group, so a command the shell did not
// exec is killed along with it. A reaper goroutine collects the status so
// that exitCode never blocks.
type unixProcess struct {
	proc *os.Process
	done chan struct{}

	state   *os.ProcessState
	waitErr error

	// killed is set while a Kill is in flight or has been delivered, so a
	// SIGKILL exit is reported with the forced exit code.
	killed     atomic.Bool
	forcedCode atomic.Uint32
}

func startProcess(cfg spawnConfig) (osProcess, error) {
	attr := &os.ProcAttr{Dir: cfg.dir, Sys: procgroup.Attr()}
	if cfg.inheritHandles {
		attr.Files = []*os.File{os.Stdin, os.Stdout, os.Stderr}
	} else {
		null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
		if err != nil {
			return nil, err
		}
		defer null.Close()
		attr.Files = []*os.File{null, null, null}
	}

	proc, err := os.StartProcess(shellPath, []string{"sh", "-c", cfg.command}, attr)
	if err != nil {
		return nil, err
	}

	p := &unixProcess{proc: proc, done: make(chan struct{})}
	go p.reap()
	return p, nil
}

func (p *unixProcess) reap() {
	p.state, p.waitErr = p.proc.Wait()
	close(p.done)
}

func (p *unixProcess) pid() uint32 {
	return uint32(p.proc.Pid)
}

func (p *unixProcess) await() error {
	<-p.done
	return p.waitErr
}

func (p *unixProcess) exitCode() (uint32, error) {
	select {
	case <-p.done:
	default:
		return stillActive, nil
	}
	if p.waitErr != nil {
		return 0, p.waitErr
	}

	ws, ok := p.state.Sys().(syscall.WaitStatus)
	if ok && ws.Signaled() {
		if p.killed.Load() && ws.Signal() == unix.SIGKILL {
			return p.forcedCode.Load(), nil
		}
		return 128 + uint32(ws.Signal()), nil
	}
	return uint32(p.state.ExitCode()), nil
}

func (p *unixProcess) terminate(code uint32) error {
	select {
	case <-p.done:
		return unix.ESRCH
	default:
	}

	p.forcedCode.Store(code)
	wasKilled := p.killed.Swap(true)
	if err := procgroup.Kill(p.proc.Pid, unix.SIGKILL); err != nil {
		if !wasKilled {
			p.killed.Store(false)
		}
		return err
	}
	return nil
}

func (p *unixProcess) close() error {
	return p.proc.Release()
}
