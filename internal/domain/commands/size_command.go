package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// Size is the interface for the installed package size report.
type Size interface {
	Execute(projectPath string) (entities.SizeReport, error)
}

// SizeCommand measures every top-level package installed in node_modules.
type SizeCommand struct {
	inspector repositories.DirectoryInspector
}

// NewSizeCommand creates a new SizeCommand.
func NewSizeCommand(inspector repositories.DirectoryInspector) *SizeCommand {
	return &SizeCommand{inspector: inspector}
}

// Execute returns the packages of projectPath sorted by size, largest first.
// Scoped packages are reported as "@scope/name"; dot directories are ignored.
func (it *SizeCommand) Execute(projectPath string) (entities.SizeReport, error) {
	nodeModules := filepath.Join(projectPath, entities.NodeModulesDir)
	info, err := it.inspector.Stat(nodeModules)
	if err != nil || !info.IsDirectory {
		return entities.SizeReport{Packages: []entities.PackageSize{}}, nil
	}

	entries, err := it.inspector.ListEntries(nodeModules)
	if err != nil {
		return entities.SizeReport{DependenciesInstalled: true, Packages: []entities.PackageSize{}},
			fmt.Errorf("failed to read %s: %w", nodeModules, err)
	}

	report := entities.SizeReport{DependenciesInstalled: true, Packages: []entities.PackageSize{}}
	for _, entry := range entries {
		if !entry.IsDirectory || strings.HasPrefix(entry.Name, ".") {
			continue
		}
		if !strings.HasPrefix(entry.Name, "@") {
			report.Packages = append(report.Packages, it.measure(nodeModules, entry.Name))
			continue
		}

		scoped, scopeErr := it.inspector.ListEntries(filepath.Join(nodeModules, entry.Name))
		if scopeErr != nil {
			continue
		}
		for _, child := range scoped {
			if child.IsDirectory {
				report.Packages = append(report.Packages, it.measure(nodeModules, entry.Name+"/"+child.Name))
			}
		}
	}

	sort.SliceStable(report.Packages, func(i, j int) bool {
		return report.Packages[i].Size > report.Packages[j].Size
	})
	for _, pkg := range report.Packages {
		report.TotalSize += pkg.Size
	}
	return report, nil
}

func (it *SizeCommand) measure(nodeModules, name string) entities.PackageSize {
	size, files := it.directorySize(filepath.Join(nodeModules, filepath.FromSlash(name)))
	return entities.PackageSize{Name: name, Size: size, Files: files}
}

// directorySize sums file sizes below dir. Unreadable entries count as empty.
func (it *SizeCommand) directorySize(dir string) (int64, int) {
	entries, err := it.inspector.ListEntries(dir)
	if err != nil {
		return 0, 0
	}

	var size int64
	files := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name)
		if entry.IsDirectory {
			childSize, childFiles := it.directorySize(path)
			size += childSize
			files += childFiles
			continue
		}
		info, statErr := it.inspector.Stat(path)
		if statErr != nil {
			continue
		}
		size += info.Size
		files++
	}
	return size, files
}
