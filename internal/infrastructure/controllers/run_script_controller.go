package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// RunScriptController handles the "run-script" subcommand.
type RunScriptController struct {
	scan     commands.Scan
	bulk     commands.Bulk
	settings *entities.Settings
}

// NewRunScriptController creates a new RunScriptController.
func NewRunScriptController(scan commands.Scan, bulk commands.Bulk, settings *entities.Settings) *RunScriptController {
	return &RunScriptController{scan: scan, bulk: bulk, settings: settings}
}

// GetBind returns the Cobra command metadata for the run-script controller.
func (it *RunScriptController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run-script <script> [paths...]",
		Short: "Run a package.json script across projects",
		Long: `Run a script in every discovered project that defines it. Projects run one
after another and stop at the first failure, or all at once with --parallel.`,
	}
}

// Execute runs the script across the workspace.
func (it *RunScriptController) Execute(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		logger.Error("run-script expects a script name")
		return
	}
	parallel, _ := cmd.Flags().GetBool("parallel")

	ctx := context.Background()
	projects, err := it.scan.Execute(ctx, workspaceRoots(args[1:], it.settings))
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return
	}

	if _, runErr := it.bulk.RunScript(ctx, projects, args[0], commands.ScriptOptions{
		DryRun:   dryRunFlag(cmd),
		Parallel: parallel,
	}); runErr != nil {
		logger.Errorf("Run script failed: %v", runErr)
	}
}

// AddFlags adds the run-script specific flags to the given Cobra command.
func (it *RunScriptController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("parallel", false, "Run the script in all projects at the same time")
}
