//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// StubSwitchCommand is a stub implementation of commands.Switch.
type StubSwitchCommand struct {
	Result           commands.SwitchResult
	ExecuteErr       error
	ExecuteCallCount int
	LastTarget       entities.PackageManager
	LastOpts         commands.SwitchOptions
}

var _ commands.Switch = (*StubSwitchCommand)(nil)

func (s *StubSwitchCommand) Execute(
	_ context.Context, _ string, target entities.PackageManager, opts commands.SwitchOptions,
) (commands.SwitchResult, error) {
	s.ExecuteCallCount++
	s.LastTarget = target
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
