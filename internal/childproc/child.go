// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package childproc

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ManuGH/childproc/internal/log"
	"github.com/ManuGH/childproc/internal/metrics"
)

// Child is a spawned process together with the OS handles that refer to it.
//
// A Child is safe for concurrent use. A blocking Wait does not prevent a
// concurrent Kill, and the handles are released exactly once no matter how
// many goroutines observe the exit.
type Child struct {
	command string
	pid     uint32
	logger  zerolog.Logger

	// mu is held shared while an OS call uses proc, and exclusively to
	// release it.
	mu     sync.RWMutex
	proc   osProcess // nil once released
	status ExitStatus
}

func newChild(cfg spawnConfig, proc osProcess, logger zerolog.Logger) *Child {
	c := &Child{
		command: cfg.command,
		pid:     proc.pid(),
		proc:    proc,
	}
	c.logger = logger.With().
		Str(log.FieldSpawnID, uuid.NewString()).
		Uint32(log.FieldPID, c.pid).
		Logger()

	metrics.IncLiveHandles()
	c.logger.Debug().
		Str(log.FieldEvent, "child.spawned").
		Str(log.FieldCommand, cfg.command).
		Str(log.FieldDir, cfg.dir).
		Bool("inherit_handles", cfg.inheritHandles).
		Msg("child process spawned")
	return c
}

// ID returns the process identifier captured at creation. The OS reuses
// identifiers once a process is reaped, so it is not a permanent name.
func (c *Child) ID() uint32 {
	return c.pid
}

// Command returns the command line the child was spawned with.
func (c *Child) Command() string {
	return c.command
}

// Released reports whether the handles have been released by a reap.
func (c *Child) Released() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.proc == nil
}

// Wait blocks until the child exits, releases its handles and returns the
// exit status. There is no timeout; Kill from another goroutine unblocks it.
//
// On failure the handles stay open and Wait may be retried. Once the child
// has been reaped, Wait fails with an error matching ErrReleased.
func (c *Child) Wait() (ExitStatus, error) {
	c.mu.RLock()
	proc := c.proc
	if proc == nil {
		c.mu.RUnlock()
		return ExitStatus{}, releasedError(ErrWaitFailed)
	}
	if err := proc.await(); err != nil {
		c.mu.RUnlock()
		return ExitStatus{}, c.fail(newOSError(ErrWaitFailed, err))
	}
	code, err := proc.exitCode()
	c.mu.RUnlock()
	if err != nil {
		return ExitStatus{}, c.fail(newOSError(ErrGetExitCodeFailed, err))
	}
	return c.release(code, "wait"), nil
}

// TryWait reports the exit status without blocking. exited is false while
// the child is still running; the handles then stay open and TryWait may be
// called again. On the first observed exit the handles are released.
//
// A child that really exits with code 259 (STILL_ACTIVE) is reported as
// still running: the platform status query cannot tell the two apart.
func (c *Child) TryWait() (status ExitStatus, exited bool, err error) {
	c.mu.RLock()
	proc := c.proc
	if proc == nil {
		c.mu.RUnlock()
		return ExitStatus{}, false, releasedError(ErrGetExitCodeFailed)
	}
	code, err := proc.exitCode()
	c.mu.RUnlock()
	if err != nil {
		return ExitStatus{}, false, c.fail(newOSError(ErrGetExitCodeFailed, err))
	}
	if code == stillActive {
		return ExitStatus{}, false, nil
	}
	return c.release(code, "try_wait"), true, nil
}

// Kill requests immediate termination of the child with exit code zero.
// Termination is asynchronous and the handles stay open: the child must
// still be reaped with Wait or TryWait. Killing a child that already exited
// fails with ErrKillFailed, which callers can usually ignore.
func (c *Child) Kill() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.proc == nil {
		metrics.IncKill("error")
		return releasedError(ErrKillFailed)
	}
	if err := c.proc.terminate(killExitCode); err != nil {
		metrics.IncKill("error")
		return c.fail(newOSError(ErrKillFailed, err))
	}

	metrics.IncKill("ok")
	c.logger.Debug().
		Str(log.FieldEvent, "child.kill_requested").
		Msg("termination requested")
	return nil
}

// release performs the one-time Running -> Released transition. When another
// caller already released the handles, the status it recorded is returned.
func (c *Child) release(code uint32, path string) ExitStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.proc == nil {
		return c.status
	}

	err := c.proc.close()
	c.proc = nil
	c.status = ExitStatus{code: code}

	outcome := "success"
	if !c.status.Success() {
		outcome = "failure"
	}
	metrics.DecLiveHandles()
	metrics.IncReap(path, outcome)

	if err != nil {
		c.logger.Warn().
			Err(err).
			Str(log.FieldEvent, "child.close_failed").
			Msg("closing process handles failed")
	}
	c.logger.Debug().
		Str(log.FieldEvent, "child.reaped").
		Str(log.FieldReapPath, path).
		Uint32(log.FieldExitCode, code).
		Msg("child process reaped")
	return c.status
}

func (c *Child) fail(err *OSError) *OSError {
	c.logger.Debug().
		Err(err.Err).
		Str(log.FieldEvent, "child.op_failed").
		Str("op", err.Op.Error()).
		Uint32("code", err.Code).
		Msg("child process operation failed")
	return err
}
