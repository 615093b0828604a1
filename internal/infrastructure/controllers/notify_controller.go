package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

const notifyArgs = 2

// NotifyController handles the "notify" subcommand.
type NotifyController struct {
	command commands.Notify
}

// NewNotifyController creates a new NotifyController.
func NewNotifyController(command commands.Notify) *NotifyController {
	return &NotifyController{command: command}
}

// GetBind returns the Cobra command metadata for the notify controller.
func (it *NotifyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "notify <path> <level>",
		Short: "Set which dependency updates are reported for a project",
		Long: `Store the update notification level of a project in its .dev-manager.json.
Levels: major, minor (default), patch, prerelease, all, none.`,
	}
}

// Execute validates and stores the level.
func (it *NotifyController) Execute(cmd *cobra.Command, args []string) {
	if len(args) != notifyArgs {
		logger.Errorf("notify expects <path> <level>, got %d argument(s)", len(args))
		return
	}
	settings, err := it.command.Execute(args[0], args[1])
	if err != nil {
		logger.Errorf("Failed to set notification level: %v", err)
		return
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Update notifications set to %s\n", settings.Level())
}
