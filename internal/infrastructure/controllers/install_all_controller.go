package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// InstallAllController handles the "install-all" subcommand.
type InstallAllController struct {
	scan     commands.Scan
	bulk     commands.Bulk
	settings *entities.Settings
}

// NewInstallAllController creates a new InstallAllController.
func NewInstallAllController(scan commands.Scan, bulk commands.Bulk, settings *entities.Settings) *InstallAllController {
	return &InstallAllController{scan: scan, bulk: bulk, settings: settings}
}

// GetBind returns the Cobra command metadata for the install-all controller.
func (it *InstallAllController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "install-all [paths...]",
		Short: "Install dependencies in every project",
		Long:  `Run the install command of each project's package manager in every discovered project.`,
	}
}

// Execute installs dependencies across the workspace.
func (it *InstallAllController) Execute(cmd *cobra.Command, args []string) {
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
	if _, installErr := it.bulk.InstallAll(ctx, projects, commands.BulkOptions{DryRun: dryRunFlag(cmd)}); installErr != nil {
		logger.Errorf("Install failed: %v", installErr)
	}
}
