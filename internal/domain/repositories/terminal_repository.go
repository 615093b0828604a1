package repositories

import "context"

// TerminalRepository is the sink that executes package manager command lines.
type TerminalRepository interface {
	// Send runs command in dir. The title labels the run in logs.
	Send(ctx context.Context, title, dir, command string) error
}
