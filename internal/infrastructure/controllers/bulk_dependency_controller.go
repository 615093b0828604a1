package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

const bulkDependencyMinArgs = 2

// BulkDependencyController handles the "bulk-dependency" subcommand.
type BulkDependencyController struct {
	scan     commands.Scan
	bulk     commands.Bulk
	settings *entities.Settings
}

// NewBulkDependencyController creates a new BulkDependencyController.
func NewBulkDependencyController(
	scan commands.Scan,
	bulk commands.Bulk,
	settings *entities.Settings,
) *BulkDependencyController {
	return &BulkDependencyController{scan: scan, bulk: bulk, settings: settings}
}

// GetBind returns the Cobra command metadata for the bulk-dependency controller.
func (it *BulkDependencyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bulk-dependency <add|remove|update> <name> [paths...]",
		Short: "Add, remove or update a dependency in every project",
		Long: `Apply the same dependency change to every discovered project, each one
with its own package manager. Use --version to pin a version for add and update.`,
	}
}

// Execute applies the change across the workspace.
func (it *BulkDependencyController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < bulkDependencyMinArgs {
		logger.Error("bulk-dependency expects <add|remove|update> <name>")
		return
	}
	action, err := commands.ParseDependencyAction(args[0])
	if err != nil {
		logger.Error(err)
		return
	}
	version, _ := cmd.Flags().GetString("version")
	dev, _ := cmd.Flags().GetBool("dev")

	ctx := context.Background()
	projects, err := it.scan.Execute(ctx, workspaceRoots(args[bulkDependencyMinArgs:], it.settings))
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return
	}
	if len(projects) == 0 {
		logger.Info("No Node.js projects found in workspace")
		return
	}

	request := commands.DependencyRequest{Action: action, Name: args[1], Version: version, Dev: dev}
	if _, bulkErr := it.bulk.ManageDependency(ctx, projects, request, commands.BulkOptions{
		DryRun: dryRunFlag(cmd),
	}); bulkErr != nil {
		logger.Errorf("Bulk %s failed: %v", action, bulkErr)
	}
}

// AddFlags adds the bulk-dependency specific flags to the given Cobra command.
func (it *BulkDependencyController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("version", "", "Version to install (add and update only)")
	cmd.Flags().Bool("dev", false, "Add as a development dependency")
}
