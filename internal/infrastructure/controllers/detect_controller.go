package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// DetectController handles the "detect" subcommand.
type DetectController struct {
	command commands.Detect
}

// NewDetectController creates a new DetectController.
func NewDetectController(command commands.Detect) *DetectController {
	return &DetectController{command: command}
}

// GetBind returns the Cobra command metadata for the detect controller.
func (it *DetectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "detect [path]",
		Short: "Print the package manager of a project",
		Long: `Detect the package manager governing a project from its lock files,
package.json, configuration files and installed artifacts. When nothing
points to a manager, the first one installed on this machine is used.`,
	}
}

// Execute prints the detected package manager.
func (it *DetectController) Execute(cmd *cobra.Command, args []string) {
	pm := it.command.Execute(context.Background(), pathArgument(args, 0))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), pm)
}
