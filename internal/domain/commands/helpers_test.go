//go:build unit

package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/infrastructure/repositories/filesystem"
)

// newTree builds an in-memory file tree. Keys ending in "/" are directories.
func newTree(t *testing.T, files map[string]string) (afero.Fs, *filesystem.AferoDirectoryInspector) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if path[len(path)-1] == '/' {
			require.NoError(t, fs.MkdirAll(filepath.Clean(path), 0o755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs, filesystem.NewAferoDirectoryInspector(fs)
}

func testSettings() *entities.Settings {
	settings := entities.DefaultSettings()
	settings.Registry.Concurrency = 3
	settings.Scan.Concurrency = 2
	return settings
}
