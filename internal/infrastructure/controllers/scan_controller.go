package controllers

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command  commands.Scan
	settings *entities.Settings
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan, settings *entities.Settings) *ScanController {
	return &ScanController{command: command, settings: settings}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan [paths...]",
		Short: "List Node.js projects and their outdated dependencies",
		Long: `Discover every Node.js project under the given paths (or the configured
workspaces), detect its package manager and report the dependency updates
allowed by each project's notification level.`,
	}
}

// Execute runs the workspace scan and prints the result.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) {
	projects, err := it.command.Execute(context.Background(), workspaceRoots(args, it.settings))
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return
	}
	if len(projects) == 0 {
		logger.Info("No Node.js projects found in workspace")
		return
	}
	printProjects(cmd.OutOrStdout(), projects)
}

func printProjects(out io.Writer, projects []entities.Project) {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(writer, "PROJECT\tMANAGER\tDEPENDENCIES\tUPDATES\tLEVEL\tPATH")
	for _, project := range projects {
		_, _ = fmt.Fprintf(writer, "%s\t%s\t%d\t%d\t%s\t%s\n",
			project.Name,
			project.PackageManager,
			len(project.AllDependencies()),
			countUpdates(project),
			project.UpdateSettings.Level(),
			project.Path,
		)
	}
	_ = writer.Flush()

	for _, project := range projects {
		if !project.HasUpdates() {
			continue
		}
		_, _ = fmt.Fprintf(out, "\n%s:\n", project.Name)
		writer = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, dep := range project.AllDependencies() {
			if dep.HasUpdate {
				_, _ = fmt.Fprintf(writer, "  %s\t%s\t->\t%s\t(%s)\n",
					dep.Name, dep.CurrentVersion, dep.LatestVersion, dep.UpdateType)
			}
		}
		_ = writer.Flush()
	}
}

func countUpdates(project entities.Project) int {
	count := 0
	for _, dep := range project.AllDependencies() {
		if dep.HasUpdate {
			count++
		}
	}
	return count
}
