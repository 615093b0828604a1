package filesystem

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

const fileMode = 0o644

// AferoDirectoryInspector implements repositories.DirectoryInspector on top of an afero file system.
type AferoDirectoryInspector struct {
	fs afero.Fs
}

// NewAferoDirectoryInspector creates an inspector over fs.
func NewAferoDirectoryInspector(fs afero.Fs) *AferoDirectoryInspector {
	return &AferoDirectoryInspector{fs: fs}
}

// NewOsDirectoryInspector creates an inspector over the real file system.
func NewOsDirectoryInspector() *AferoDirectoryInspector {
	return NewAferoDirectoryInspector(afero.NewOsFs())
}

func (it *AferoDirectoryInspector) Exists(path string) bool {
	exists, err := afero.Exists(it.fs, path)
	return err == nil && exists
}

func (it *AferoDirectoryInspector) Stat(path string) (repositories.FileInfo, error) {
	info, err := it.fs.Stat(path)
	if err != nil {
		return repositories.FileInfo{}, err
	}
	return repositories.FileInfo{Size: info.Size(), IsDirectory: info.IsDir()}, nil
}

func (it *AferoDirectoryInspector) ListEntries(path string) ([]repositories.Entry, error) {
	infos, err := afero.ReadDir(it.fs, path)
	if err != nil {
		return nil, err
	}
	entries := make([]repositories.Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, repositories.Entry{Name: info.Name(), IsDirectory: info.IsDir()})
	}
	return entries, nil
}

func (it *AferoDirectoryInspector) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(it.fs, path)
}

func (it *AferoDirectoryInspector) WriteFile(path string, content []byte) error {
	mode := os.FileMode(fileMode)
	if info, err := it.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := afero.WriteFile(it.fs, path, content, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (it *AferoDirectoryInspector) Remove(path string) error {
	if err := it.fs.RemoveAll(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

var _ repositories.DirectoryInspector = (*AferoDirectoryInspector)(nil)
