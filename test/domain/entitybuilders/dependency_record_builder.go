//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/devmanager/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyRecordBuilder helps create test dependency records with a fluent interface.
type DependencyRecordBuilder struct {
	*testkit.BaseBuilder
	name           string
	versionRange   string
	currentVersion string
	latestVersion  string
	updateType     entities.UpdateClassification
	hasUpdate      bool
	dev            bool
}

// NewDependencyRecordBuilder creates a new dependency record builder with sensible defaults.
func NewDependencyRecordBuilder() *DependencyRecordBuilder {
	return &DependencyRecordBuilder{
		BaseBuilder:    testkit.NewBaseBuilder(),
		name:           "test-dependency",
		versionRange:   "^1.0.0",
		currentVersion: "1.0.0",
		latestVersion:  "1.0.0",
	}
}

// WithName sets the dependency name.
func (b *DependencyRecordBuilder) WithName(name string) *DependencyRecordBuilder {
	b.name = name
	return b
}

// WithVersionRange sets the declared range.
func (b *DependencyRecordBuilder) WithVersionRange(versionRange string) *DependencyRecordBuilder {
	b.versionRange = versionRange
	return b
}

// WithUpdate sets the installed and latest versions and the visible update.
func (b *DependencyRecordBuilder) WithUpdate(
	current, latest string,
	updateType entities.UpdateClassification,
) *DependencyRecordBuilder {
	b.currentVersion = current
	b.latestVersion = latest
	b.updateType = updateType
	b.hasUpdate = true
	return b
}

// WithDev marks the dependency as a dev dependency.
func (b *DependencyRecordBuilder) WithDev(dev bool) *DependencyRecordBuilder {
	b.dev = dev
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *DependencyRecordBuilder) Build() interface{} {
	return b.BuildRecord()
}

// BuildRecord creates the record with a concrete return type.
func (b *DependencyRecordBuilder) BuildRecord() entities.DependencyRecord {
	return entities.DependencyRecord{
		Name:              b.name,
		VersionRange:      b.versionRange,
		Version:           b.currentVersion,
		CurrentVersion:    b.currentVersion,
		LatestVersion:     b.latestVersion,
		UpdateType:        b.updateType,
		HasUpdate:         b.hasUpdate,
		IsInstalled:       b.currentVersion != "",
		Dev:               b.dev,
		AvailableVersions: []string{b.latestVersion},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-dependency"
	b.versionRange = "^1.0.0"
	b.currentVersion = "1.0.0"
	b.latestVersion = "1.0.0"
	b.updateType = entities.UpdateNone
	b.hasUpdate = false
	b.dev = false
	return b
}

// Clone creates a deep copy of the DependencyRecordBuilder.
func (b *DependencyRecordBuilder) Clone() testkit.Builder {
	return &DependencyRecordBuilder{
		BaseBuilder:    b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:           b.name,
		versionRange:   b.versionRange,
		currentVersion: b.currentVersion,
		latestVersion:  b.latestVersion,
		updateType:     b.updateType,
		hasUpdate:      b.hasUpdate,
		dev:            b.dev,
	}
}
