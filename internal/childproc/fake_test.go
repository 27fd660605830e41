// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package childproc

import (
	"sync"
	"syscall"
)

// fakeProcess is an in-memory osProcess whose exit is driven by the test.
type fakeProcess struct {
	id uint32

	mu         sync.Mutex
	exited     chan struct{}
	code       uint32
	closeCalls int
	terms      []uint32

	awaitErr     error
	exitCodeErr  error
	terminateErr error
}

func newFakeProcess(id uint32) *fakeProcess {
	return &fakeProcess{id: id, exited: make(chan struct{})}
}

func (f *fakeProcess) exit(code uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	select {
	case <-f.exited:
		return
	default:
	}
	f.code = code
	close(f.exited)
}

func (f *fakeProcess) pid() uint32 { return f.id }

func (f *fakeProcess) await() error {
	if f.awaitErr != nil {
		return f.awaitErr
	}
	<-f.exited
	return nil
}

func (f *fakeProcess) exitCode() (uint32, error) {
	if f.exitCodeErr != nil {
		return 0, f.exitCodeErr
	}
	select {
	case <-f.exited:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.code, nil
	default:
		return stillActive, nil
	}
}

func (f *fakeProcess) terminate(code uint32) error {
	if f.terminateErr != nil {
		return f.terminateErr
	}
	select {
	case <-f.exited:
		return syscall.Errno(5)
	default:
	}
	f.mu.Lock()
	f.terms = append(f.terms, code)
	f.mu.Unlock()
	f.exit(code)
	return nil
}

func (f *fakeProcess) close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalls++
	return nil
}

func (f *fakeProcess) closed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeCalls
}

// fakeBuilder returns a Builder whose spawns yield proc and records the
// configuration snapshots it was started with.
func fakeBuilder(command string, procs ...*fakeProcess) (Builder, *[]spawnConfig) {
	var (
		mu      sync.Mutex
		configs []spawnConfig
		next    int
	)
	b := New(command)
	b.start = func(cfg spawnConfig) (osProcess, error) {
		mu.Lock()
		defer mu.Unlock()
		configs = append(configs, cfg)
		p := procs[next]
		next++
		return p, nil
	}
	return b, &configs
}
