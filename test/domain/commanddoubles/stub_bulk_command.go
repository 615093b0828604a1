//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// StubBulkCommand is a stub implementation of commands.Bulk.
type StubBulkCommand struct {
	Err error

	InstallCalls    int
	UpdateCalls     int
	LastProjects    []entities.Project
	LastScript      string
	LastScriptOpts  commands.ScriptOptions
	LastRequest     commands.DependencyRequest
	LastBulkOptions commands.BulkOptions
}

var _ commands.Bulk = (*StubBulkCommand)(nil)

func (s *StubBulkCommand) InstallAll(
	_ context.Context, projects []entities.Project, opts commands.BulkOptions,
) (int, error) {
	s.InstallCalls++
	s.LastProjects = projects
	s.LastBulkOptions = opts
	return len(projects), s.Err
}

func (s *StubBulkCommand) UpdateAll(
	_ context.Context, projects []entities.Project, opts commands.BulkOptions,
) (int, error) {
	s.UpdateCalls++
	s.LastProjects = projects
	s.LastBulkOptions = opts
	return len(projects), s.Err
}

func (s *StubBulkCommand) RunScript(
	_ context.Context, projects []entities.Project, script string, opts commands.ScriptOptions,
) (int, error) {
	s.LastProjects = projects
	s.LastScript = script
	s.LastScriptOpts = opts
	return len(projects), s.Err
}

func (s *StubBulkCommand) ManageDependency(
	_ context.Context, projects []entities.Project, request commands.DependencyRequest, opts commands.BulkOptions,
) (int, error) {
	s.LastProjects = projects
	s.LastRequest = request
	s.LastBulkOptions = opts
	return len(projects), s.Err
}
