//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/devmanager/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ProjectBuilder helps create test projects with a fluent interface.
type ProjectBuilder struct {
	*testkit.BaseBuilder
	name           string
	path           string
	packageManager entities.PackageManager
	dependencies   []entities.DependencyRecord
	scripts        []entities.Script
	level          entities.NotificationLevel
}

// NewProjectBuilder creates a new project builder with sensible defaults.
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		name:           "test-project",
		path:           "/workspace/test-project",
		packageManager: entities.PackageManagerNpm,
		level:          entities.DefaultNotificationLevel,
	}
}

// WithName sets the project name.
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.name = name
	return b
}

// WithPath sets the project directory.
func (b *ProjectBuilder) WithPath(path string) *ProjectBuilder {
	b.path = path
	return b
}

// WithPackageManager sets the detected package manager.
func (b *ProjectBuilder) WithPackageManager(pm entities.PackageManager) *ProjectBuilder {
	b.packageManager = pm
	return b
}

// WithDependency appends a dependency record.
func (b *ProjectBuilder) WithDependency(record entities.DependencyRecord) *ProjectBuilder {
	b.dependencies = append(b.dependencies, record)
	return b
}

// WithScript appends a manifest script.
func (b *ProjectBuilder) WithScript(name, command string) *ProjectBuilder {
	b.scripts = append(b.scripts, entities.Script{Name: name, Command: command})
	return b
}

// WithNotificationLevel sets the project's notification level.
func (b *ProjectBuilder) WithNotificationLevel(level entities.NotificationLevel) *ProjectBuilder {
	b.level = level
	return b
}

// Build creates the project (satisfies testkit.Builder interface).
func (b *ProjectBuilder) Build() interface{} {
	return b.BuildProject()
}

// BuildProject creates the project with a concrete return type.
func (b *ProjectBuilder) BuildProject() entities.Project {
	var deps, devDeps []entities.DependencyRecord
	for _, record := range b.dependencies {
		if record.Dev {
			devDeps = append(devDeps, record)
		} else {
			deps = append(deps, record)
		}
	}
	return entities.Project{
		Name:            b.name,
		Path:            b.path,
		PackageManager:  b.packageManager,
		Dependencies:    deps,
		DevDependencies: devDeps,
		Scripts:         append([]entities.Script{}, b.scripts...),
		UpdateSettings:  entities.UpdateNotificationSettings{NotificationLevel: b.level},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProjectBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-project"
	b.path = "/workspace/test-project"
	b.packageManager = entities.PackageManagerNpm
	b.dependencies = nil
	b.scripts = nil
	b.level = entities.DefaultNotificationLevel
	return b
}

// Clone creates a deep copy of the ProjectBuilder.
func (b *ProjectBuilder) Clone() testkit.Builder {
	return &ProjectBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:           b.name,
		path:           b.path,
		packageManager: b.packageManager,
		dependencies:   append([]entities.DependencyRecord{}, b.dependencies...),
		scripts:        append([]entities.Script{}, b.scripts...),
		level:          b.level,
	}
}
