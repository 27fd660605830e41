// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package childproc spawns a single child process from a command line and
// manages the OS handles that come with it.
//
// A Builder carries the spawn configuration: the full command line (program
// name and arguments undivided, resolved by the OS path search rules), whether
// the child inherits the caller's inheritable handles, and an optional working
// directory. Spawn returns a Child which exclusively owns the process handle
// and the handle of its primary thread.
//
//	child, err := childproc.New("notepad.exe").CurrentDir(dir).Spawn()
//	if err != nil {
//	    return err
//	}
//	status, err := child.Wait()
//
// # Reaping
//
// The handles of a Child are released exactly once, the first time Wait or
// TryWait observes a definite exit code. Kill only requests termination; the
// caller still has to reap the child. A Child that is never reaped keeps its
// kernel object alive until the caller exits.
//
// After the handles are released every further Wait, TryWait or Kill fails
// with an error matching ErrReleased instead of touching stale handles.
//
// # Errors
//
// Failures are reported as *OSError values. errors.Is selects the kind
// (ErrCreationFailed, ErrWaitFailed, ErrGetExitCodeFailed, ErrKillFailed) and
// OSError.Code holds the platform diagnostic code of the call that failed.
//
// # Platforms
//
// On Windows the package drives CreateProcessW, WaitForSingleObject,
// GetExitCodeProcess, TerminateProcess and CloseHandle directly. On Unix the
// command line is handed to /bin/sh -c and the same lifecycle is provided on
// top of os.Process.
package childproc
