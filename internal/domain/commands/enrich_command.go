package commands

import (
	"context"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// Enrich is the interface for the dependency enrichment pipeline.
type Enrich interface {
	Execute(
		ctx context.Context,
		projectPath string,
		declared []entities.DeclaredDependency,
		settings entities.UpdateNotificationSettings,
	) []entities.DependencyRecord
}

// EnrichCommand annotates declared dependencies with their installed version,
// the versions published in the registry and the update classification.
type EnrichCommand struct {
	inspector   repositories.DirectoryInspector
	registry    repositories.RegistryRepository
	concurrency int
}

// NewEnrichCommand creates a new EnrichCommand. Registry lookups are bounded by
// settings.Registry.Concurrency.
func NewEnrichCommand(
	inspector repositories.DirectoryInspector,
	registry repositories.RegistryRepository,
	settings *entities.Settings,
) *EnrichCommand {
	concurrency := settings.Registry.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &EnrichCommand{
		inspector:   inspector,
		registry:    registry,
		concurrency: concurrency,
	}
}

// Execute returns one record per declared dependency, in declaration order.
// Lookups only happen when the project has a node_modules directory.
func (it *EnrichCommand) Execute(
	ctx context.Context,
	projectPath string,
	declared []entities.DeclaredDependency,
	settings entities.UpdateNotificationSettings,
) []entities.DependencyRecord {
	records := make([]entities.DependencyRecord, len(declared))

	if !it.inspector.Exists(filepath.Join(projectPath, entities.NodeModulesDir)) {
		for i, dep := range declared {
			records[i] = entities.NewFallbackRecord(dep)
		}
		return records
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(it.concurrency)
	for i, dep := range declared {
		group.Go(func() error {
			records[i] = it.enrich(groupCtx, projectPath, dep, settings)
			return nil
		})
	}
	_ = group.Wait()

	return records
}

func (it *EnrichCommand) enrich(
	ctx context.Context,
	projectPath string,
	dep entities.DeclaredDependency,
	settings entities.UpdateNotificationSettings,
) entities.DependencyRecord {
	record := entities.NewFallbackRecord(dep)

	record.CurrentVersion = it.installedVersion(projectPath, dep.Name)
	if record.CurrentVersion != "" {
		record.IsInstalled = true
		record.Version = record.CurrentVersion
	}

	record.AvailableVersions = it.registry.ListVersions(ctx, dep.Name)
	if record.AvailableVersions == nil {
		record.AvailableVersions = []string{}
	}
	if len(record.AvailableVersions) > 0 {
		record.LatestVersion = record.AvailableVersions[0]
	}

	if record.CurrentVersion != "" && record.LatestVersion != "" {
		record.UpdateType = entities.ClassifyUpdate(record.CurrentVersion, record.LatestVersion)
		record.HasUpdate = entities.ShouldNotify(record.UpdateType, settings)
		if record.UpdateType != entities.UpdateNone {
			logger.Debugf(
				"[enrich] %s: %s -> %s (%s, notify=%t)",
				dep.Name, record.CurrentVersion, record.LatestVersion, record.UpdateType, record.HasUpdate,
			)
		}
	}

	return record
}

// installedVersion reads node_modules/<name>/package.json. Empty when not installed.
func (it *EnrichCommand) installedVersion(projectPath, name string) string {
	path := filepath.Join(projectPath, entities.NodeModulesDir, filepath.FromSlash(name), entities.ManifestFileName)
	content, err := it.inspector.ReadFile(path)
	if err != nil {
		return ""
	}
	return entities.ReadInstalledVersion(content)
}
