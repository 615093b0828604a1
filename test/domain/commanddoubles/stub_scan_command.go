//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	Projects   []entities.Project
	ExecuteErr error
	LastRoots  []string
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(_ context.Context, roots []string) ([]entities.Project, error) {
	s.LastRoots = roots
	return s.Projects, s.ExecuteErr
}

func (s *StubScanCommand) LoadProject(_ context.Context, projectPath string) (*entities.Project, error) {
	for i := range s.Projects {
		if s.Projects[i].Path == projectPath {
			return &s.Projects[i], nil
		}
	}
	return nil, s.ExecuteErr
}
