//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
)

// StubDependencyCommand is a stub implementation of commands.Dependency.
type StubDependencyCommand struct {
	ExecuteErr       error
	ExecuteCallCount int
	LastPath         string
	LastRequest      commands.DependencyRequest
	LastOpts         commands.BulkOptions
}

var _ commands.Dependency = (*StubDependencyCommand)(nil)

func (s *StubDependencyCommand) Execute(
	_ context.Context, projectPath string, request commands.DependencyRequest, opts commands.BulkOptions,
) error {
	s.ExecuteCallCount++
	s.LastPath = projectPath
	s.LastRequest = request
	s.LastOpts = opts
	return s.ExecuteErr
}
