package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings come from DEVMANAGER_CONFIG (set by --config) or the default locations
	return container.Provide(LoadSettings)
}
