package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

const (
	dependencyMinArgs  = 3
	dependencyArgsFull = 4
)

// DependencyController handles the "dependency" subcommand.
type DependencyController struct {
	command commands.Dependency
}

// NewDependencyController creates a new DependencyController.
func NewDependencyController(command commands.Dependency) *DependencyController {
	return &DependencyController{command: command}
}

// GetBind returns the Cobra command metadata for the dependency controller.
func (it *DependencyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "dependency <add|remove|update> <path> <name> [version]",
		Short: "Add, remove or change the version of a project dependency",
		Long: `Change one dependency of a project with its package manager.
"update" writes the version into package.json and reinstalls.`,
	}
}

// Execute applies the change.
func (it *DependencyController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < dependencyMinArgs || len(args) > dependencyArgsFull {
		logger.Error("dependency expects <add|remove|update> <path> <name> [version]")
		return
	}
	action, err := commands.ParseDependencyAction(args[0])
	if err != nil {
		logger.Error(err)
		return
	}
	dev, _ := cmd.Flags().GetBool("dev")

	request := commands.DependencyRequest{Action: action, Name: args[2], Dev: dev}
	if len(args) == dependencyArgsFull {
		request.Version = args[3]
	}

	if execErr := it.command.Execute(context.Background(), args[1], request, commands.BulkOptions{
		DryRun: dryRunFlag(cmd),
	}); execErr != nil {
		logger.Errorf("Dependency %s failed: %v", action, execErr)
	}
}

// AddFlags adds the dependency specific flags to the given Cobra command.
func (it *DependencyController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dev", false, "Target devDependencies")
}
