//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
	doubles "github.com/rios0rios0/devmanager/test/infrastructure/repositorydoubles"
)

func installed(name, version string) (string, string) {
	return "/p/node_modules/" + name + "/package.json", fmt.Sprintf(`{"name": %q, "version": %q}`, name, version)
}

func TestEnrichCommandExecute(t *testing.T) {
	t.Parallel()

	minor := entities.UpdateNotificationSettings{NotificationLevel: entities.NotifyMinor}

	t.Run("should return fallback records without node_modules", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{"/p/package.json": "{}"})
		registry := &doubles.StubRegistryRepository{Versions: map[string][]string{"react": {"18.2.0"}}}
		cmd := commands.NewEnrichCommand(inspector, registry, testSettings())
		declared := []entities.DeclaredDependency{{Name: "react", VersionRange: "^17.0.0"}}

		// when
		records := cmd.Execute(context.Background(), "/p", declared, minor)

		// then
		require.Len(t, records, 1)
		assert.Equal(t, entities.NewFallbackRecord(declared[0]), records[0])
		assert.Equal(t, 0, registry.CallCount())
	})

	t.Run("should classify installed dependencies against the latest version", func(t *testing.T) {
		t.Parallel()

		// given
		reactPath, reactManifest := installed("react", "17.0.2")
		typesPath, typesManifest := installed("@types/node", "20.1.0")
		_, inspector := newTree(t, map[string]string{reactPath: reactManifest, typesPath: typesManifest})
		registry := &doubles.StubRegistryRepository{Versions: map[string][]string{
			"react":       {"18.2.0", "17.0.2"},
			"@types/node": {"20.1.4", "20.1.0"},
		}}
		cmd := commands.NewEnrichCommand(inspector, registry, testSettings())
		declared := []entities.DeclaredDependency{
			{Name: "react", VersionRange: "^17.0.0"},
			{Name: "@types/node", VersionRange: "~20.1.0", Dev: true},
		}

		// when
		records := cmd.Execute(context.Background(), "/p", declared, minor)

		// then
		require.Len(t, records, 2)
		assert.Equal(t, entities.DependencyRecord{
			Name:              "react",
			VersionRange:      "^17.0.0",
			Version:           "17.0.2",
			CurrentVersion:    "17.0.2",
			LatestVersion:     "18.2.0",
			UpdateType:        entities.UpdateMajor,
			HasUpdate:         true,
			IsInstalled:       true,
			AvailableVersions: []string{"18.2.0", "17.0.2"},
		}, records[0])
		assert.Equal(t, entities.UpdatePatch, records[1].UpdateType)
		assert.False(t, records[1].HasUpdate, "patch updates are hidden at the minor level")
		assert.True(t, records[1].Dev)
	})

	t.Run("should keep the declaration order when lookups finish out of order", func(t *testing.T) {
		t.Parallel()

		// given
		const count = 9
		files := map[string]string{}
		versions := map[string][]string{}
		delays := map[string]time.Duration{}
		var declared []entities.DeclaredDependency
		for i := range count {
			name := fmt.Sprintf("pkg-%02d", i)
			path, manifest := installed(name, "1.0.0")
			files[path] = manifest
			versions[name] = []string{fmt.Sprintf("1.%d.0", i)}
			delays[name] = time.Duration(count-i) * 10 * time.Millisecond
			declared = append(declared, entities.DeclaredDependency{Name: name, VersionRange: "^1.0.0"})
		}
		_, inspector := newTree(t, files)
		registry := &doubles.StubRegistryRepository{Versions: versions, Delays: delays}
		settings := testSettings()
		cmd := commands.NewEnrichCommand(inspector, registry, settings)

		// when
		records := cmd.Execute(context.Background(), "/p", declared, minor)

		// then
		require.Len(t, records, count)
		names := make([]string, 0, count)
		for i, record := range records {
			assert.Equal(t, declared[i].Name, record.Name)
			assert.Equal(t, versions[record.Name][0], record.LatestVersion)
			names = append(names, record.Name)
		}
		assert.NotEqual(t, names, registry.CompletionOrder(), "lookups should complete out of declaration order")
		assert.Equal(t, entities.UpdateNone, records[0].UpdateType)
		assert.Equal(t, entities.UpdateMinor, records[1].UpdateType)
		assert.Equal(t, count, registry.CallCount())
	})

	t.Run("should bound concurrent lookups by the registry concurrency", func(t *testing.T) {
		t.Parallel()

		// given
		files := map[string]string{}
		delays := map[string]time.Duration{}
		var declared []entities.DeclaredDependency
		for i := range 12 {
			name := fmt.Sprintf("dep-%02d", i)
			path, manifest := installed(name, "1.0.0")
			files[path] = manifest
			delays[name] = 20 * time.Millisecond
			declared = append(declared, entities.DeclaredDependency{Name: name})
		}
		_, inspector := newTree(t, files)
		registry := &doubles.StubRegistryRepository{Delays: delays}
		settings := testSettings()
		cmd := commands.NewEnrichCommand(inspector, registry, settings)

		// when
		records := cmd.Execute(context.Background(), "/p", declared, minor)

		// then
		require.Len(t, records, len(declared))
		assert.LessOrEqual(t, registry.MaxInFlight(), settings.Registry.Concurrency)
		assert.Greater(t, registry.MaxInFlight(), 1)
	})

	t.Run("should match the documented end-to-end examples", func(t *testing.T) {
		t.Parallel()

		for _, tt := range []struct {
			level     entities.NotificationLevel
			hasUpdate bool
		}{
			{level: entities.NotifyMinor, hasUpdate: true},
			{level: entities.NotifyMajor, hasUpdate: false},
		} {
			// given
			path, manifest := installed("lib", "1.2.0")
			_, inspector := newTree(t, map[string]string{path: manifest})
			registry := &doubles.StubRegistryRepository{Versions: map[string][]string{"lib": {"1.3.0", "1.2.0", "1.0.0"}}}
			cmd := commands.NewEnrichCommand(inspector, registry, testSettings())
			declared := []entities.DeclaredDependency{{Name: "lib", VersionRange: "^1.0.0"}}

			// when
			records := cmd.Execute(context.Background(), "/p", declared,
				entities.UpdateNotificationSettings{NotificationLevel: tt.level})

			// then
			require.Len(t, records, 1)
			assert.Equal(t, "1.2.0", records[0].CurrentVersion, tt.level)
			assert.Equal(t, "1.3.0", records[0].LatestVersion, tt.level)
			assert.Equal(t, entities.UpdateMinor, records[0].UpdateType, tt.level)
			assert.Equal(t, tt.hasUpdate, records[0].HasUpdate, tt.level)
		}
	})

	t.Run("should degrade to no update information when the registry fails", func(t *testing.T) {
		t.Parallel()

		// given
		path, manifest := installed("left-pad", "1.3.0")
		_, inspector := newTree(t, map[string]string{path: manifest})
		registry := &doubles.StubRegistryRepository{}
		cmd := commands.NewEnrichCommand(inspector, registry, testSettings())
		declared := []entities.DeclaredDependency{{Name: "left-pad", VersionRange: "^1.3.0"}}

		// when
		records := cmd.Execute(context.Background(), "/p", declared, minor)

		// then
		require.Len(t, records, 1)
		assert.True(t, records[0].IsInstalled)
		assert.Empty(t, records[0].LatestVersion)
		assert.Equal(t, entities.UpdateNone, records[0].UpdateType)
		assert.False(t, records[0].HasUpdate)
		assert.Equal(t, []string{}, records[0].AvailableVersions)
	})

	t.Run("should not classify a dependency that is not installed", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{"/p/node_modules/": ""})
		registry := &doubles.StubRegistryRepository{Versions: map[string][]string{"react": {"18.2.0"}}}
		cmd := commands.NewEnrichCommand(inspector, registry, testSettings())
		declared := []entities.DeclaredDependency{{Name: "react", VersionRange: "~17.0.0"}}

		// when
		records := cmd.Execute(context.Background(), "/p", declared, minor)

		// then
		require.Len(t, records, 1)
		assert.False(t, records[0].IsInstalled)
		assert.Equal(t, "17.0.0", records[0].Version)
		assert.Equal(t, "18.2.0", records[0].LatestVersion)
		assert.Equal(t, entities.UpdateNone, records[0].UpdateType)
		assert.False(t, records[0].HasUpdate)
	})

	t.Run("should hide every update at level none but keep the classification", func(t *testing.T) {
		t.Parallel()

		// given
		path, manifest := installed("react", "17.0.2")
		_, inspector := newTree(t, map[string]string{path: manifest})
		registry := &doubles.StubRegistryRepository{Versions: map[string][]string{"react": {"18.2.0"}}}
		cmd := commands.NewEnrichCommand(inspector, registry, testSettings())
		declared := []entities.DeclaredDependency{{Name: "react", VersionRange: "^17.0.0"}}

		// when
		records := cmd.Execute(context.Background(), "/p", declared,
			entities.UpdateNotificationSettings{NotificationLevel: entities.NotifyNone})

		// then
		require.Len(t, records, 1)
		assert.Equal(t, entities.UpdateMajor, records[0].UpdateType)
		assert.False(t, records[0].HasUpdate)
	})
}
