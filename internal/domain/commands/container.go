package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []interface{}{
		NewDetectCommand,
		NewEnrichCommand,
		NewScanCommand,
		NewNotifyCommand,
		NewBulkCommand,
		NewSwitchCommand,
		NewDependencyCommand,
		NewSizeCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *DetectCommand) Detect { return impl },
		func(impl *EnrichCommand) Enrich { return impl },
		func(impl *ScanCommand) Scan { return impl },
		func(impl *NotifyCommand) Notify { return impl },
		func(impl *BulkCommand) Bulk { return impl },
		func(impl *SwitchCommand) Switch { return impl },
		func(impl *DependencyCommand) Dependency { return impl },
		func(impl *SizeCommand) Size { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
