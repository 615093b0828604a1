//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// StubSizeCommand is a stub implementation of commands.Size.
type StubSizeCommand struct {
	Report     entities.SizeReport
	ExecuteErr error
	LastPath   string
}

var _ commands.Size = (*StubSizeCommand)(nil)

func (s *StubSizeCommand) Execute(projectPath string) (entities.SizeReport, error) {
	s.LastPath = projectPath
	return s.Report, s.ExecuteErr
}
