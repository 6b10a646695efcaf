//go:build !windows

// Package stderr redirects file descriptor 2 into the log so that stray
// writes from the runtime or cgo code do not corrupt the alt screen.
package stderr

import (
	"context"
	"os"
	"syscall"
)

// lines receives captured stderr lines. The scanning goroutine closes it
// once Stop has closed the pipe.
var lines = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start redirects fd 2 into a pipe. On error the program keeps the original
// stderr.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	lines = make(chan string, 100)

	go scan(pipeRead, lines)
	return nil
}

// Forward logs captured lines until ctx is done or Stop is called.
func Forward(ctx context.Context) {
	forward(ctx, lines, logLine)
}

// Stop restores the original stderr.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = 0

	// The reader sees EOF and scan closes lines.
	pipeWrite.Close()
	started = false
}
