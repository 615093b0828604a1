package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

const switchArgs = 2

// SwitchController handles the "switch" subcommand.
type SwitchController struct {
	command commands.Switch
}

// NewSwitchController creates a new SwitchController.
func NewSwitchController(command commands.Switch) *SwitchController {
	return &SwitchController{command: command}
}

// GetBind returns the Cobra command metadata for the switch controller.
func (it *SwitchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "switch <path> <npm|yarn|pnpm|bun>",
		Short: "Move a project to another package manager",
		Long: `Delete node_modules and every lock file of a project, then install it
again with the chosen package manager.`,
	}
}

// Execute switches the package manager.
func (it *SwitchController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != switchArgs {
		logger.Error("switch expects <path> <manager>")
		return
	}
	target, err := entities.ParsePackageManager(args[1])
	if err != nil {
		logger.Error(err)
		return
	}

	result, err := it.command.Execute(context.Background(), args[0], target, commands.SwitchOptions{
		DryRun: dryRunFlag(cmd),
	})
	if err != nil {
		logger.Errorf("Switch failed: %v", err)
		return
	}

	out := cmd.OutOrStdout()
	if result.PreviousLockFile != "" {
		_, _ = fmt.Fprintf(out, "Removed %s (%s)\n", result.PreviousLockFile, result.Previous)
	}
	_, _ = fmt.Fprintf(out, "Switched to %s\n", target)
}
