package controllers

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// UpdateAllController handles the "update-all" subcommand.
type UpdateAllController struct {
	scan     commands.Scan
	bulk     commands.Bulk
	settings *entities.Settings
}

// NewUpdateAllController creates a new UpdateAllController.
func NewUpdateAllController(scan commands.Scan, bulk commands.Bulk, settings *entities.Settings) *UpdateAllController {
	return &UpdateAllController{scan: scan, bulk: bulk, settings: settings}
}

// GetBind returns the Cobra command metadata for the update-all controller.
func (it *UpdateAllController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update-all [paths...]",
		Short: "Update dependencies in projects with reported updates",
		Long: `Run the update command of each project's package manager in every project
that has at least one update allowed by its notification level.`,
	}
}

// Execute updates dependencies across the workspace.
func (it *UpdateAllController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	projects, err := it.scan.Execute(ctx, workspaceRoots(args, it.settings))
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return
	}
	if len(projects) == 0 {
		logger.Info("No Node.js projects found in workspace")
		return
	}

	_, updateErr := it.bulk.UpdateAll(ctx, projects, commands.BulkOptions{DryRun: dryRunFlag(cmd)})
	switch {
	case errors.Is(updateErr, entities.ErrNoUpdates):
		logger.Info("No updates available according to current notification settings")
	case updateErr != nil:
		logger.Errorf("Update failed: %v", updateErr)
	}
}
