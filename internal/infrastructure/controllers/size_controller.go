package controllers

import (
	"fmt"
	"text/tabwriter"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// SizeController handles the "size" subcommand.
type SizeController struct {
	command commands.Size
}

// NewSizeController creates a new SizeController.
func NewSizeController(command commands.Size) *SizeController {
	return &SizeController{command: command}
}

// GetBind returns the Cobra command metadata for the size controller.
func (it *SizeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "size [path]",
		Short: "Report the disk usage of installed packages",
		Long:  `List the packages installed in a project's node_modules, largest first.`,
	}
}

// Execute prints the size report.
func (it *SizeController) Execute(cmd *cobra.Command, args []string) {
	report, err := it.command.Execute(pathArgument(args, 0))
	if err != nil {
		logger.Errorf("Size analysis failed: %v", err)
		return
	}

	out := cmd.OutOrStdout()
	if !report.DependenciesInstalled {
		_, _ = fmt.Fprintln(out, "Dependencies are not installed")
		return
	}

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(writer, "PACKAGE\tSIZE\tFILES\t")
	for _, pkg := range report.Packages {
		_, _ = fmt.Fprintf(writer, "%s\t%s\t%d\t\n", pkg.Name, entities.FormatSize(pkg.Size), pkg.Files)
	}
	_ = writer.Flush()
	_, _ = fmt.Fprintf(out, "Total: %s in %d package(s)\n", entities.FormatSize(report.TotalSize), len(report.Packages))
}
