package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// Switch is the interface for moving a project to another package manager.
type Switch interface {
	Execute(ctx context.Context, projectPath string, target entities.PackageManager, opts SwitchOptions) (SwitchResult, error)
}

// SwitchOptions holds runtime options for a package manager switch.
type SwitchOptions struct {
	DryRun bool
}

// SwitchResult describes what a switch replaced.
type SwitchResult struct {
	Previous         entities.PackageManager
	PreviousLockFile string // empty when the project had no lock file
}

// SwitchCommand removes the installed tree and every lock file of a project, then
// installs it again with the target package manager.
type SwitchCommand struct {
	inspector repositories.DirectoryInspector
	terminal  repositories.TerminalRepository
	detect    Detect
}

// NewSwitchCommand creates a new SwitchCommand.
func NewSwitchCommand(
	inspector repositories.DirectoryInspector,
	terminal repositories.TerminalRepository,
	detect Detect,
) *SwitchCommand {
	return &SwitchCommand{
		inspector: inspector,
		terminal:  terminal,
		detect:    detect,
	}
}

// Execute switches the project at projectPath to target.
func (it *SwitchCommand) Execute(
	ctx context.Context,
	projectPath string,
	target entities.PackageManager,
	opts SwitchOptions,
) (SwitchResult, error) {
	result := SwitchResult{
		Previous:         it.detect.Execute(ctx, projectPath),
		PreviousLockFile: it.LockFile(projectPath),
	}
	if result.Previous == target {
		logger.Infof("%s already uses %s, reinstalling", projectPath, target)
	}

	if opts.DryRun {
		logger.Infof("[dry-run] Would remove %s and lock files in %s", entities.NodeModulesDir, projectPath)
	} else if err := it.cleanup(projectPath); err != nil {
		return result, err
	}

	title := fmt.Sprintf("Switch to %s - %s", target, filepath.Base(projectPath))
	if err := dispatch(ctx, it.terminal, opts.DryRun, title, projectPath, target.Command(entities.ActionInstall)); err != nil {
		return result, err
	}
	return result, nil
}

// LockFile returns the name of the first lock file present in projectPath, of any size.
func (it *SwitchCommand) LockFile(projectPath string) string {
	for _, lock := range entities.LockFiles() {
		if it.inspector.Exists(filepath.Join(projectPath, lock.Name)) {
			return lock.Name
		}
	}
	return ""
}

func (it *SwitchCommand) cleanup(projectPath string) error {
	targets := []string{entities.NodeModulesDir}
	for _, lock := range entities.LockFiles() {
		targets = append(targets, lock.Name)
	}
	for _, name := range targets {
		if err := it.inspector.Remove(filepath.Join(projectPath, name)); err != nil {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}
