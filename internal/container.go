package internal

import (
	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/infrastructure/controllers"
	"github.com/rios0rios0/devmanager/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings first: every repository constructor reads them
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// The application root collects the controllers
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}
