package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// Bulk is the interface for operations applied across many projects.
type Bulk interface {
	InstallAll(ctx context.Context, projects []entities.Project, opts BulkOptions) (int, error)
	UpdateAll(ctx context.Context, projects []entities.Project, opts BulkOptions) (int, error)
	RunScript(ctx context.Context, projects []entities.Project, script string, opts ScriptOptions) (int, error)
	ManageDependency(ctx context.Context, projects []entities.Project, request DependencyRequest, opts BulkOptions) (int, error)
}

// BulkOptions holds runtime options shared by all bulk operations.
type BulkOptions struct {
	DryRun bool
}

// ScriptOptions holds runtime options for running a script across projects.
type ScriptOptions struct {
	DryRun   bool
	Parallel bool
}

// DependencyAction is a change applied to one dependency.
type DependencyAction string

const (
	DependencyAdd    DependencyAction = "add"
	DependencyRemove DependencyAction = "remove"
	DependencyUpdate DependencyAction = "update"
)

// ParseDependencyAction validates an action name.
func ParseDependencyAction(raw string) (DependencyAction, error) {
	switch action := DependencyAction(raw); action {
	case DependencyAdd, DependencyRemove, DependencyUpdate:
		return action, nil
	default:
		return "", fmt.Errorf("unknown dependency action %q (expected add, remove or update)", raw)
	}
}

// DependencyRequest describes a dependency change. Version is optional for add and update.
type DependencyRequest struct {
	Action  DependencyAction
	Name    string
	Version string
	Dev     bool
}

// BulkCommand sends package manager commands for many projects to the terminal,
// each project using its own package manager.
type BulkCommand struct {
	terminal repositories.TerminalRepository
}

// NewBulkCommand creates a new BulkCommand.
func NewBulkCommand(terminal repositories.TerminalRepository) *BulkCommand {
	return &BulkCommand{terminal: terminal}
}

// InstallAll installs the dependencies of every project. It returns the number of
// projects a command was sent for.
func (it *BulkCommand) InstallAll(ctx context.Context, projects []entities.Project, opts BulkOptions) (int, error) {
	var errs []error
	sent := 0
	for _, project := range projects {
		command := echoStep("Installing dependencies for "+project.Name+"...") +
			" && " + project.PackageManager.Command(entities.ActionInstall)
		if err := dispatch(ctx, it.terminal, opts.DryRun, "Install - "+project.Name, project.Path, command); err != nil {
			errs = append(errs, err)
			continue
		}
		sent++
	}
	logger.Infof("Installing dependencies for %d project(s)", sent)
	return sent, errors.Join(errs...)
}

// UpdateAll updates the projects that have at least one update admitted by their
// notification settings. ErrNoUpdates is returned when there is none.
func (it *BulkCommand) UpdateAll(ctx context.Context, projects []entities.Project, opts BulkOptions) (int, error) {
	var outdated []entities.Project
	for _, project := range projects {
		if project.HasUpdates() {
			outdated = append(outdated, project)
		}
	}
	if len(outdated) == 0 {
		return 0, entities.ErrNoUpdates
	}

	var errs []error
	sent := 0
	for _, project := range outdated {
		message := fmt.Sprintf("Updating dependencies for %s (%s updates)...", project.Name, project.UpdateSettings.Level())
		command := echoStep(message) + " && " + project.PackageManager.Command(entities.ActionUpdate)
		if err := dispatch(ctx, it.terminal, opts.DryRun, "Update - "+project.Name, project.Path, command); err != nil {
			errs = append(errs, err)
			continue
		}
		sent++
	}
	logger.Infof("Updating dependencies for %d project(s)", sent)
	return sent, errors.Join(errs...)
}

// RunScript runs a script in every project that defines it, as one terminal command.
// Sequential runs stop at the first failure; parallel runs start every project in the
// background and wait for all of them.
func (it *BulkCommand) RunScript(
	ctx context.Context,
	projects []entities.Project,
	script string,
	opts ScriptOptions,
) (int, error) {
	var steps []string
	for _, project := range projects {
		if !project.HasScript(script) {
			continue
		}
		steps = append(steps, fmt.Sprintf(
			"cd %s && %s && %s",
			shellquote.Join(project.Path),
			echoStep("Running "+script+" in "+project.Name+"..."),
			project.PackageManager.RunCommand(script),
		))
	}
	if len(steps) == 0 {
		return 0, fmt.Errorf("%w: %q", entities.ErrScriptNotFound, script)
	}

	command := buildScriptChain(steps, opts.Parallel)
	title := "Multi-Project Script: " + script
	if err := dispatch(ctx, it.terminal, opts.DryRun, title, "", command); err != nil {
		return 0, err
	}
	logger.Infof("Running script %q in %d project(s)", script, len(steps))
	return len(steps), nil
}

// ManageDependency adds, removes or updates one dependency in every project.
func (it *BulkCommand) ManageDependency(
	ctx context.Context,
	projects []entities.Project,
	request DependencyRequest,
	opts BulkOptions,
) (int, error) {
	if request.Name == "" {
		return 0, errors.New("dependency name is required")
	}

	title := fmt.Sprintf("Bulk %s - %s", capitalize(string(request.Action)), request.Name)
	var errs []error
	sent := 0
	for _, project := range projects {
		command, err := dependencyCommand(project.PackageManager, request)
		if err != nil {
			return sent, err
		}
		step := echoStep("Project: "+project.Name) + " && " + command
		if sendErr := dispatch(ctx, it.terminal, opts.DryRun, title, project.Path, step); sendErr != nil {
			errs = append(errs, sendErr)
			continue
		}
		sent++
	}
	logger.Infof("Finished %s of %s in %d project(s)", request.Action, request.Name, sent)
	return sent, errors.Join(errs...)
}

func dependencyCommand(pm entities.PackageManager, request DependencyRequest) (string, error) {
	switch request.Action {
	case DependencyAdd:
		return pm.AddCommand(request.Name, request.Version, request.Dev), nil
	case DependencyRemove:
		return pm.RemoveCommand(request.Name), nil
	case DependencyUpdate:
		return pm.BulkUpdateCommand(request.Name, request.Version), nil
	default:
		return "", fmt.Errorf("unknown dependency action %q", request.Action)
	}
}

// buildScriptChain joins per-project steps into a single shell command line.
func buildScriptChain(steps []string, parallel bool) string {
	if !parallel {
		return strings.Join(steps, " && ")
	}
	lines := make([]string, 0, len(steps)+1)
	for _, step := range steps {
		lines = append(lines, step+" &")
	}
	return strings.Join(append(lines, "wait"), "\n")
}

// echoStep prints message from the shell. Project and script names come from manifests,
// so the message is always quoted.
func echoStep(message string) string {
	return "echo " + shellquote.Join(message)
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

// dispatch sends a command to the terminal, or only logs it in dry-run mode.
func dispatch(
	ctx context.Context,
	terminal repositories.TerminalRepository,
	dryRun bool,
	title, dir, command string,
) error {
	if dryRun {
		logger.Infof("[dry-run] %s: %s", title, command)
		return nil
	}
	if err := terminal.Send(ctx, title, dir, command); err != nil {
		return fmt.Errorf("%s: %w", title, err)
	}
	return nil
}
