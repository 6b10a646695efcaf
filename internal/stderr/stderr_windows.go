//go:build windows

// Package stderr is a no-op on Windows, where fd 2 is not redirected.
package stderr

import "context"

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// Forward returns when ctx is done.
func Forward(ctx context.Context) {
	<-ctx.Done()
}

// Stop is a no-op on Windows.
func Stop() {}
