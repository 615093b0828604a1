package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// Dependency is the interface for single-project dependency changes.
type Dependency interface {
	Execute(ctx context.Context, projectPath string, request DependencyRequest, opts BulkOptions) error
}

// DependencyCommand adds, removes or pins a dependency of one project using the
// project's detected package manager.
type DependencyCommand struct {
	inspector repositories.DirectoryInspector
	terminal  repositories.TerminalRepository
	detect    Detect
}

// NewDependencyCommand creates a new DependencyCommand.
func NewDependencyCommand(
	inspector repositories.DirectoryInspector,
	terminal repositories.TerminalRepository,
	detect Detect,
) *DependencyCommand {
	return &DependencyCommand{
		inspector: inspector,
		terminal:  terminal,
		detect:    detect,
	}
}

// Execute applies the request. Updates rewrite the version in package.json and then
// run an install, so the declared range is exactly the requested one.
func (it *DependencyCommand) Execute(
	ctx context.Context,
	projectPath string,
	request DependencyRequest,
	opts BulkOptions,
) error {
	if request.Name == "" {
		return errors.New("dependency name is required")
	}
	pm := it.detect.Execute(ctx, projectPath)

	var title, command string
	switch request.Action {
	case DependencyAdd:
		title, command = "Add "+request.Name, pm.AddCommand(request.Name, request.Version, request.Dev)
	case DependencyRemove:
		title, command = "Remove "+request.Name, pm.RemoveCommand(request.Name)
	case DependencyUpdate:
		if request.Version == "" {
			return errors.New("a version is required to update a dependency")
		}
		if err := it.setVersion(projectPath, request, opts.DryRun); err != nil {
			return err
		}
		title, command = "Update "+request.Name, pm.Command(entities.ActionInstall)
	default:
		return fmt.Errorf("unknown dependency action %q", request.Action)
	}

	return dispatch(ctx, it.terminal, opts.DryRun, title, projectPath, command)
}

func (it *DependencyCommand) setVersion(projectPath string, request DependencyRequest, dryRun bool) error {
	path := filepath.Join(projectPath, entities.ManifestFileName)
	content, err := it.inspector.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to update version: %w", err)
	}
	updated, err := entities.SetDependencyVersion(content, request.Name, request.Version, request.Dev)
	if err != nil {
		return fmt.Errorf("failed to update version: %w", err)
	}
	if dryRun {
		logger.Infof("[dry-run] Would set %s to %s in %s", request.Name, request.Version, path)
		return nil
	}
	if writeErr := it.inspector.WriteFile(path, updated); writeErr != nil {
		return fmt.Errorf("failed to update version: %w", writeErr)
	}
	logger.Infof("Set %s to %s in %s", request.Name, request.Version, path)
	return nil
}
