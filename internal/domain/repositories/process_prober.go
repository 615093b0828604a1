package repositories

import "context"

// ProcessProber checks whether an executable is callable on this machine.
type ProcessProber interface {
	// ProbeVersion runs "<executable> --version" and reports whether it exited successfully
	// within the configured timeout.
	ProbeVersion(ctx context.Context, executable string) bool
}
