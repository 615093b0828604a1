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
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
	commanddoubles "github.com/rios0rios0/devmanager/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/devmanager/test/infrastructure/repositorydoubles"
)

func newScanCommand(
	inspector repositories.DirectoryInspector,
	settingsRepo repositories.UpdateSettingsRepository,
	registry repositories.RegistryRepository,
) (*commands.ScanCommand, *commanddoubles.StubDetectCommand) {
	detect := &commanddoubles.StubDetectCommand{Result: entities.PackageManagerPnpm}
	enrich := commands.NewEnrichCommand(inspector, registry, testSettings())
	return commands.NewScanCommand(inspector, settingsRepo, detect, enrich, testSettings()), detect
}

func TestScanCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return top-level projects shortest path first", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{
			"/ws/a/package.json":                  `{"name": "a", "license": "MIT", "scripts": {"build": "tsc"}}`,
			"/ws/a/packages/x/package.json":       `{"name": "x"}`,
			"/ws/b/package.json":                  `{"name": `,
			"/ws/b/sub/package.json":              `{"name": "sub"}`,
			"/ws/c/node_modules/dep/package.json": `{"name": "dep"}`,
			"/ws/.git/package.json":               `{"name": "git"}`,
			"/ws/dd/package.json":                 `{}`,
		})
		settingsRepo := &doubles.StubUpdateSettingsRepository{Settings: map[string]entities.UpdateNotificationSettings{
			"/ws/a": {NotificationLevel: entities.NotifyPatch},
		}}
		cmd, detect := newScanCommand(inspector, settingsRepo, &doubles.StubRegistryRepository{})

		// when
		projects, err := cmd.Execute(context.Background(), []string{"/ws"})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 3)
		assert.Equal(t, "a", projects[0].Name)
		assert.Equal(t, "/ws/a", projects[0].Path)
		assert.Equal(t, "MIT", projects[0].License)
		assert.Equal(t, entities.NotifyPatch, projects[0].UpdateSettings.NotificationLevel)
		assert.True(t, projects[0].HasScript("build"))
		assert.Equal(t, entities.PackageManagerPnpm, projects[0].PackageManager)
		assert.Equal(t, "dd", projects[1].Name, "the directory name is used when the manifest has none")
		assert.Equal(t, "sub", projects[2].Name, "an invalid parent does not hide its children")
		assert.ElementsMatch(t, []string{"/ws/a", "/ws/dd", "/ws/b/sub"}, detect.ProjectDirs)
	})

	t.Run("should enrich dependencies and dev dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{
			"/ws/app/package.json": `{"name": "app", "dependencies": {"react": "^17.0.0"},
				"devDependencies": {"jest": "^29.0.0"}}`,
			"/ws/app/node_modules/react/package.json": `{"version": "17.0.2"}`,
			"/ws/app/node_modules/jest/package.json":  `{"version": "29.0.0"}`,
		})
		registry := &doubles.StubRegistryRepository{Versions: map[string][]string{
			"react": {"17.1.0"},
			"jest":  {"29.0.1"},
		}}
		cmd, _ := newScanCommand(inspector, &doubles.StubUpdateSettingsRepository{}, registry)

		// when
		projects, err := cmd.Execute(context.Background(), []string{"/ws"})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 1)
		require.Len(t, projects[0].Dependencies, 1)
		require.Len(t, projects[0].DevDependencies, 1)
		assert.True(t, projects[0].Dependencies[0].HasUpdate)
		assert.Equal(t, entities.UpdatePatch, projects[0].DevDependencies[0].UpdateType)
		assert.False(t, projects[0].DevDependencies[0].HasUpdate)
		assert.True(t, projects[0].HasUpdates())
	})

	t.Run("should fail for a missing root", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{})
		cmd, _ := newScanCommand(inspector, &doubles.StubUpdateSettingsRepository{}, &doubles.StubRegistryRepository{})

		// when
		_, err := cmd.Execute(context.Background(), []string{"/nowhere"})

		// then
		require.Error(t, err)
	})

	t.Run("should bound concurrent project builds by the scan concurrency", func(t *testing.T) {
		t.Parallel()

		// given
		files := map[string]string{}
		for i := range 8 {
			files[fmt.Sprintf("/ws/p%d/package.json", i)] = fmt.Sprintf(`{"name": "p%d"}`, i)
		}
		_, inspector := newTree(t, files)
		settings := testSettings()
		detect := &commanddoubles.StubDetectCommand{Delay: 20 * time.Millisecond}
		enrich := commands.NewEnrichCommand(inspector, &doubles.StubRegistryRepository{}, settings)
		cmd := commands.NewScanCommand(inspector, &doubles.StubUpdateSettingsRepository{}, detect, enrich, settings)

		// when
		projects, err := cmd.Execute(context.Background(), []string{"/ws"})

		// then
		require.NoError(t, err)
		require.Len(t, projects, 8)
		for i, project := range projects {
			assert.Equal(t, fmt.Sprintf("/ws/p%d", i), project.Path)
		}
		assert.LessOrEqual(t, detect.MaxInFlight(), settings.Scan.Concurrency)
		assert.Greater(t, detect.MaxInFlight(), 1)
	})
}

func TestScanCommandLoadProject(t *testing.T) {
	t.Parallel()

	t.Run("should build a single project", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{"/ws/app/package.json": `{"name": "app"}`})
		cmd, _ := newScanCommand(inspector, &doubles.StubUpdateSettingsRepository{}, &doubles.StubRegistryRepository{})

		// when
		project, err := cmd.LoadProject(context.Background(), "/ws/app")

		// then
		require.NoError(t, err)
		assert.Equal(t, "app", project.Name)
		assert.Equal(t, entities.DefaultNotificationLevel, project.UpdateSettings.NotificationLevel)
	})

	t.Run("should fail without a manifest", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{"/ws/app/": ""})
		cmd, _ := newScanCommand(inspector, &doubles.StubUpdateSettingsRepository{}, &doubles.StubRegistryRepository{})

		// when
		_, err := cmd.LoadProject(context.Background(), "/ws/app")

		// then
		require.Error(t, err)
	})
}
