//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
	commanddoubles "github.com/rios0rios0/devmanager/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/devmanager/test/infrastructure/repositorydoubles"
)

func TestDependencyCommandExecute(t *testing.T) {
	t.Parallel()

	const manifest = `{
  "name": "app",
  "dependencies": {
    "react": "^17.0.0"
  }
}
`

	t.Run("should add with the detected manager", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{"/p/package.json": manifest})
		terminal := &doubles.SpyTerminalRepository{}
		detect := &commanddoubles.StubDetectCommand{Result: entities.PackageManagerYarn}
		cmd := commands.NewDependencyCommand(inspector, terminal, detect)
		request := commands.DependencyRequest{Action: commands.DependencyAdd, Name: "jest", Version: "29.7.0", Dev: true}

		// when
		err := cmd.Execute(context.Background(), "/p", request, commands.BulkOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []doubles.SentCommand{{Title: "Add jest", Dir: "/p", Command: "yarn add -D jest@29.7.0"}}, terminal.Sent)
	})

	t.Run("should remove with the detected manager", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{"/p/package.json": manifest})
		terminal := &doubles.SpyTerminalRepository{}
		detect := &commanddoubles.StubDetectCommand{Result: entities.PackageManagerPnpm}
		cmd := commands.NewDependencyCommand(inspector, terminal, detect)
		request := commands.DependencyRequest{Action: commands.DependencyRemove, Name: "react"}

		// when
		err := cmd.Execute(context.Background(), "/p", request, commands.BulkOptions{})

		// then
		require.NoError(t, err)
		require.Len(t, terminal.Sent, 1)
		assert.Equal(t, "pnpm remove react", terminal.Sent[0].Command)
	})

	t.Run("should rewrite the manifest and reinstall on update", func(t *testing.T) {
		t.Parallel()

		// given
		fs, inspector := newTree(t, map[string]string{"/p/package.json": manifest})
		terminal := &doubles.SpyTerminalRepository{}
		cmd := commands.NewDependencyCommand(inspector, terminal, &commanddoubles.StubDetectCommand{})
		request := commands.DependencyRequest{Action: commands.DependencyUpdate, Name: "react", Version: "18.2.0"}

		// when
		err := cmd.Execute(context.Background(), "/p", request, commands.BulkOptions{})

		// then
		require.NoError(t, err)
		content, readErr := afero.ReadFile(fs, "/p/package.json")
		require.NoError(t, readErr)
		assert.Contains(t, string(content), `"react": "18.2.0"`)
		require.Len(t, terminal.Sent, 1)
		assert.Equal(t, "npm install", terminal.Sent[0].Command)
	})

	t.Run("should leave the manifest untouched in dry-run mode", func(t *testing.T) {
		t.Parallel()

		// given
		fs, inspector := newTree(t, map[string]string{"/p/package.json": manifest})
		terminal := &doubles.SpyTerminalRepository{}
		cmd := commands.NewDependencyCommand(inspector, terminal, &commanddoubles.StubDetectCommand{})
		request := commands.DependencyRequest{Action: commands.DependencyUpdate, Name: "react", Version: "18.2.0"}

		// when
		err := cmd.Execute(context.Background(), "/p", request, commands.BulkOptions{DryRun: true})

		// then
		require.NoError(t, err)
		content, _ := afero.ReadFile(fs, "/p/package.json")
		assert.Equal(t, manifest, string(content))
		assert.Empty(t, terminal.Sent)
	})

	t.Run("should require a version to update", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{"/p/package.json": manifest})
		cmd := commands.NewDependencyCommand(inspector, &doubles.SpyTerminalRepository{}, &commanddoubles.StubDetectCommand{})
		request := commands.DependencyRequest{Action: commands.DependencyUpdate, Name: "react"}

		// when
		err := cmd.Execute(context.Background(), "/p", request, commands.BulkOptions{})

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the manifest is missing", func(t *testing.T) {
		t.Parallel()

		// given
		_, inspector := newTree(t, map[string]string{"/p/": ""})
		cmd := commands.NewDependencyCommand(inspector, &doubles.SpyTerminalRepository{}, &commanddoubles.StubDetectCommand{})
		request := commands.DependencyRequest{Action: commands.DependencyUpdate, Name: "react", Version: "18.2.0"}

		// when
		err := cmd.Execute(context.Background(), "/p", request, commands.BulkOptions{})

		// then
		require.Error(t, err)
	})
}
