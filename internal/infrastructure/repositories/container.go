package repositories

import (
	"github.com/rios0rios0/devmanager/internal/domain/entities"
	domainRepos "github.com/rios0rios0/devmanager/internal/domain/repositories"
	"github.com/rios0rios0/devmanager/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/devmanager/internal/infrastructure/repositories/npm"
	"github.com/rios0rios0/devmanager/internal/infrastructure/repositories/process"
	"github.com/rios0rios0/devmanager/internal/infrastructure/repositories/projectsettings"
	"github.com/rios0rios0/devmanager/internal/infrastructure/repositories/terminal"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	constructors := []interface{}{
		filesystem.NewOsDirectoryInspector,
		projectsettings.NewJSONUpdateSettingsRepository,
		func(settings *entities.Settings) *process.ExecProcessProber {
			return process.NewExecProcessProber(settings.Scan.ProbeTimeout)
		},
		func(settings *entities.Settings) (*npm.RegistryRepository, error) {
			return npm.NewRegistryRepository(settings.Registry)
		},
		func(settings *entities.Settings) *terminal.ShellTerminalRepository {
			return terminal.NewShellTerminalRepository(settings.Terminal.Shell, settings.Terminal.DryRun)
		},
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *filesystem.AferoDirectoryInspector) domainRepos.DirectoryInspector { return impl },
		func(impl *projectsettings.JSONUpdateSettingsRepository) domainRepos.UpdateSettingsRepository {
			return impl
		},
		func(impl *process.ExecProcessProber) domainRepos.ProcessProber { return impl },
		func(impl *npm.RegistryRepository) domainRepos.RegistryRepository { return impl },
		func(impl *terminal.ShellTerminalRepository) domainRepos.TerminalRepository { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
