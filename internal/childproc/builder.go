// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package childproc

import (
	"github.com/ManuGH/childproc/internal/log"
	"github.com/ManuGH/childproc/internal/metrics"
)

// DefaultInheritHandles is the inherit-handles setting of a new Builder.
const DefaultInheritHandles = false

// Builder holds the configuration used to spawn children.
//
// Builder is a value: the option methods return an updated copy and Spawn
// never modifies it, so one Builder may start any number of independent
// children with identical configuration.
type Builder struct {
	command        string
	inheritHandles bool
	dir            string

	start startFunc
}

// New returns a Builder for the given command line. The command line holds
// the program name and its arguments exactly as typed at a shell; it is not
// validated here.
func New(command string) Builder {
	return Builder{
		command:        command,
		inheritHandles: DefaultInheritHandles,
	}
}

// InheritHandles sets whether the child inherits the caller's inheritable handles.
func (b Builder) InheritHandles(inherit bool) Builder {
	b.inheritHandles = inherit
	return b
}

// CurrentDir sets the working directory of the child. An empty dir keeps the
// caller's working directory.
func (b Builder) CurrentDir(dir string) Builder {
	b.dir = dir
	return b
}

// Command returns the configured command line.
func (b Builder) Command() string { return b.command }

// Dir returns the configured working directory, empty when inherited.
func (b Builder) Dir() string { return b.dir }

// InheritsHandles reports the configured inherit-handles setting.
func (b Builder) InheritsHandles() bool { return b.inheritHandles }

// Spawn creates a new child process from the current configuration.
//
// On failure no resources are held and the error matches ErrCreationFailed.
func (b Builder) Spawn() (*Child, error) {
	cfg := spawnConfig{
		command:        b.command,
		inheritHandles: b.inheritHandles,
		dir:            b.dir,
	}

	start := b.start
	if start == nil {
		start = startProcess
	}

	logger := log.WithComponent("childproc")

	proc, err := start(cfg)
	if err != nil {
		metrics.IncSpawn("error")
		oerr := newOSError(ErrCreationFailed, err)
		logger.Debug().
			Err(err).
			Str(log.FieldEvent, "child.spawn_failed").
			Str(log.FieldCommand, cfg.command).
			Uint32("code", oerr.Code).
			Msg("process creation failed")
		return nil, oerr
	}
	metrics.IncSpawn("ok")

	return newChild(cfg, proc, logger), nil
}

// Status spawns a child and blocks until it exits.
func (b Builder) Status() (ExitStatus, error) {
	child, err := b.Spawn()
	if err != nil {
		return ExitStatus{}, err
	}
	return child.Wait()
}
