package controllers

import (
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
)

// FlagProvider is implemented by controllers that add their own flags to their subcommand.
type FlagProvider interface {
	AddFlags(cmd *cobra.Command)
}

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []interface{}{
		NewScanController,
		NewDetectController,
		NewNotifyController,
		NewInstallAllController,
		NewUpdateAllController,
		NewRunScriptController,
		NewBulkDependencyController,
		NewDependencyController,
		NewSwitchController,
		NewSizeController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	scanController *ScanController,
	detectController *DetectController,
	notifyController *NotifyController,
	installAllController *InstallAllController,
	updateAllController *UpdateAllController,
	runScriptController *RunScriptController,
	bulkDependencyController *BulkDependencyController,
	dependencyController *DependencyController,
	switchController *SwitchController,
	sizeController *SizeController,
) *[]entities.Controller {
	return &[]entities.Controller{
		scanController,
		detectController,
		notifyController,
		installAllController,
		updateAllController,
		runScriptController,
		bulkDependencyController,
		dependencyController,
		switchController,
		sizeController,
	}
}
