//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/infrastructure/controllers"
	commanddoubles "github.com/rios0rios0/devmanager/test/domain/commanddoubles"
	"github.com/rios0rios0/devmanager/test/domain/entitybuilders"
)

// newCommand mirrors the subcommand built by main: persistent flags plus the controller's own.
func newCommand(t *testing.T, controller entities.Controller, flags ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().Bool("dry-run", false, "")
	if provider, ok := controller.(controllers.FlagProvider); ok {
		provider.AddFlags(cmd)
	}
	require.NoError(t, cmd.ParseFlags(flags))

	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestScanController(t *testing.T) {
	t.Parallel()

	t.Run("should print a summary and the reported updates", func(t *testing.T) {
		t.Parallel()

		// given
		project := entitybuilders.NewProjectBuilder().
			WithName("web").
			WithPath("/ws/web").
			WithPackageManager(entities.PackageManagerPnpm).
			WithDependency(entitybuilders.NewDependencyRecordBuilder().
				WithName("react").
				WithUpdate("17.0.2", "18.2.0", entities.UpdateMajor).
				BuildRecord()).
			WithDependency(entitybuilders.NewDependencyRecordBuilder().WithName("lodash").BuildRecord()).
			BuildProject()
		scan := &commanddoubles.StubScanCommand{Projects: []entities.Project{project}}
		controller := controllers.NewScanController(scan, entities.DefaultSettings())
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"/ws"})

		// then
		assert.Equal(t, []string{"/ws"}, scan.LastRoots)
		lines := strings.Split(out.String(), "\n")
		assert.Equal(t, []string{"PROJECT", "MANAGER", "DEPENDENCIES", "UPDATES", "LEVEL", "PATH"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"web", "pnpm", "2", "1", "minor", "/ws/web"}, strings.Fields(lines[1]))
		assert.Contains(t, out.String(), "web:")
		assert.Equal(t, []string{"react", "17.0.2", "->", "18.2.0", "(major)"}, strings.Fields(lines[4]))
	})

	t.Run("should default to the configured workspaces", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Workspaces = []string{"/a", "/b"}
		scan := &commanddoubles.StubScanCommand{}
		controller := controllers.NewScanController(scan, settings)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, []string{"/a", "/b"}, scan.LastRoots)
		assert.Empty(t, out.String())
	})
}

func TestDetectController(t *testing.T) {
	t.Parallel()

	t.Run("should print the detected manager for the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		detect := &commanddoubles.StubDetectCommand{Result: entities.PackageManagerBun}
		controller := controllers.NewDetectController(detect)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, "bun\n", out.String())
		assert.Equal(t, []string{"."}, detect.ProjectDirs)
	})
}

func TestSwitchController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the target and dry-run flag", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSwitchCommand{Result: commands.SwitchResult{
			Previous:         entities.PackageManagerNpm,
			PreviousLockFile: "package-lock.json",
		}}
		controller := controllers.NewSwitchController(stub)
		cmd, out := newCommand(t, controller, "--dry-run")

		// when
		controller.Execute(cmd, []string{"/ws/app", "yarn"})

		// then
		assert.Equal(t, entities.PackageManagerYarn, stub.LastTarget)
		assert.True(t, stub.LastOpts.DryRun)
		assert.Equal(t, "Removed package-lock.json (npm)\nSwitched to yarn\n", out.String())
	})

	t.Run("should reject unknown managers", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSwitchCommand{}
		controller := controllers.NewSwitchController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"/ws/app", "deno"})

		// then
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestRunScriptController(t *testing.T) {
	t.Parallel()

	t.Run("should run the script in parallel over the given paths", func(t *testing.T) {
		t.Parallel()

		// given
		scan := &commanddoubles.StubScanCommand{}
		bulk := &commanddoubles.StubBulkCommand{}
		controller := controllers.NewRunScriptController(scan, bulk, entities.DefaultSettings())
		cmd, _ := newCommand(t, controller, "--parallel")

		// when
		controller.Execute(cmd, []string{"test", "/ws"})

		// then
		assert.Equal(t, []string{"/ws"}, scan.LastRoots)
		assert.Equal(t, "test", bulk.LastScript)
		assert.Equal(t, commands.ScriptOptions{Parallel: true}, bulk.LastScriptOpts)
	})
}

func TestBulkDependencyController(t *testing.T) {
	t.Parallel()

	t.Run("should send the request to every scanned project", func(t *testing.T) {
		t.Parallel()

		// given
		scan := &commanddoubles.StubScanCommand{Projects: []entities.Project{
			entitybuilders.NewProjectBuilder().WithName("a").BuildProject(),
		}}
		bulk := &commanddoubles.StubBulkCommand{}
		controller := controllers.NewBulkDependencyController(scan, bulk, entities.DefaultSettings())
		cmd, _ := newCommand(t, controller, "--version", "5.0.0", "--dev")

		// when
		controller.Execute(cmd, []string{"add", "typescript"})

		// then
		assert.Equal(t, commands.DependencyRequest{
			Action: commands.DependencyAdd, Name: "typescript", Version: "5.0.0", Dev: true,
		}, bulk.LastRequest)
		assert.Len(t, bulk.LastProjects, 1)
	})

	t.Run("should not scan for an unknown action", func(t *testing.T) {
		t.Parallel()

		// given
		scan := &commanddoubles.StubScanCommand{}
		bulk := &commanddoubles.StubBulkCommand{}
		controller := controllers.NewBulkDependencyController(scan, bulk, entities.DefaultSettings())
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"upgrade", "typescript"})

		// then
		assert.Nil(t, scan.LastRoots)
	})
}

func TestDependencyController(t *testing.T) {
	t.Parallel()

	t.Run("should pass the optional version", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubDependencyCommand{}
		controller := controllers.NewDependencyController(stub)
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"update", "/ws/app", "react", "18.2.0"})

		// then
		assert.Equal(t, "/ws/app", stub.LastPath)
		assert.Equal(t, commands.DependencyRequest{
			Action: commands.DependencyUpdate, Name: "react", Version: "18.2.0",
		}, stub.LastRequest)
	})
}

func TestUpdateAllController(t *testing.T) {
	t.Parallel()

	t.Run("should treat no updates as a normal outcome", func(t *testing.T) {
		t.Parallel()

		// given
		scan := &commanddoubles.StubScanCommand{Projects: []entities.Project{
			entitybuilders.NewProjectBuilder().BuildProject(),
		}}
		bulk := &commanddoubles.StubBulkCommand{Err: entities.ErrNoUpdates}
		controller := controllers.NewUpdateAllController(scan, bulk, entities.DefaultSettings())
		cmd, _ := newCommand(t, controller, "--dry-run")

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 1, bulk.UpdateCalls)
		assert.True(t, bulk.LastBulkOptions.DryRun)
	})

	t.Run("should skip the update when the scan fails", func(t *testing.T) {
		t.Parallel()

		// given
		scan := &commanddoubles.StubScanCommand{ExecuteErr: errors.New("missing root")}
		bulk := &commanddoubles.StubBulkCommand{}
		controller := controllers.NewUpdateAllController(scan, bulk, entities.DefaultSettings())
		cmd, _ := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"/nope"})

		// then
		assert.Zero(t, bulk.UpdateCalls)
	})
}

func TestSizeController(t *testing.T) {
	t.Parallel()

	t.Run("should print packages and the total", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubSizeCommand{Report: entities.SizeReport{
			DependenciesInstalled: true,
			TotalSize:             3072,
			Packages: []entities.PackageSize{
				{Name: "big", Size: 2048, Files: 3},
				{Name: "small", Size: 1024, Files: 1},
			},
		}}
		controller := controllers.NewSizeController(stub)
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, []string{"/ws/app"})

		// then
		assert.Equal(t, "/ws/app", stub.LastPath)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, []string{"big", "2.0", "KiB", "3"}, strings.Fields(lines[1]))
		assert.Equal(t, "Total: 3.0 KiB in 2 package(s)", lines[3])
	})

	t.Run("should say when nothing is installed", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewSizeController(&commanddoubles.StubSizeCommand{})
		cmd, out := newCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, "Dependencies are not installed\n", out.String())
	})
}
