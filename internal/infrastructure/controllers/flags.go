package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// dryRunFlag reads the persistent --dry-run flag. Missing flags read as false.
func dryRunFlag(cmd *cobra.Command) bool {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	return dryRun
}

// workspaceRoots returns the paths given on the command line, or the configured workspaces.
func workspaceRoots(args []string, settings *entities.Settings) []string {
	if len(args) > 0 {
		return args
	}
	return settings.Workspaces
}

// pathArgument returns the argument at index, or "." when absent.
func pathArgument(args []string, index int) string {
	if len(args) > index {
		return args[index]
	}
	return "."
}
