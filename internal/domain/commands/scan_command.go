package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// Scan is the interface for the workspace scan.
type Scan interface {
	Execute(ctx context.Context, roots []string) ([]entities.Project, error)
	LoadProject(ctx context.Context, projectPath string) (*entities.Project, error)
}

// ScanCommand discovers Node.js projects under workspace roots and builds
// a fully enriched Project for each one.
type ScanCommand struct {
	inspector    repositories.DirectoryInspector
	settingsRepo repositories.UpdateSettingsRepository
	detect       Detect
	enrich       Enrich
	concurrency  int
}

// NewScanCommand creates a new ScanCommand. Projects are built concurrently,
// bounded by settings.Scan.Concurrency.
func NewScanCommand(
	inspector repositories.DirectoryInspector,
	settingsRepo repositories.UpdateSettingsRepository,
	detect Detect,
	enrich Enrich,
	settings *entities.Settings,
) *ScanCommand {
	concurrency := settings.Scan.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ScanCommand{
		inspector:    inspector,
		settingsRepo: settingsRepo,
		detect:       detect,
		enrich:       enrich,
		concurrency:  concurrency,
	}
}

// skippedDirs are never descended into while collecting manifests.
//
//nolint:gochecknoglobals // static lookup table
var skippedDirs = map[string]bool{
	entities.NodeModulesDir: true,
	".git":                  true,
}

// Execute scans every root and returns the top-level projects, shortest path first.
// A project nested inside another accepted project is skipped.
func (it *ScanCommand) Execute(ctx context.Context, roots []string) ([]entities.Project, error) {
	var candidates []string
	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace root %q: %w", root, err)
		}
		if !it.inspector.Exists(absRoot) {
			return nil, fmt.Errorf("workspace root %q does not exist", root)
		}
		it.collectProjectDirs(absRoot, &candidates)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i]) < len(candidates[j])
	})

	var accepted []string
	manifests := make(map[string]*entities.Manifest)
	for _, dir := range candidates {
		if _, seen := manifests[dir]; seen || isNestedIn(dir, accepted) {
			continue
		}
		manifest, err := it.readManifest(dir)
		if err != nil {
			logger.Warnf("[scan] Skipping %s: %v", dir, err)
			continue
		}
		accepted = append(accepted, dir)
		manifests[dir] = manifest
	}

	logger.Infof("[scan] Found %d project(s)", len(accepted))

	projects := make([]entities.Project, len(accepted))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(it.concurrency)
	for i, dir := range accepted {
		group.Go(func() error {
			projects[i] = it.buildProject(groupCtx, dir, manifests[dir])
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return projects, nil
}

// LoadProject builds a single project from the package.json in projectPath.
func (it *ScanCommand) LoadProject(ctx context.Context, projectPath string) (*entities.Project, error) {
	dir, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("invalid project path %q: %w", projectPath, err)
	}
	manifest, err := it.readManifest(dir)
	if err != nil {
		return nil, err
	}
	project := it.buildProject(ctx, dir, manifest)
	return &project, nil
}

// collectProjectDirs appends every directory below dir holding a package.json.
func (it *ScanCommand) collectProjectDirs(dir string, found *[]string) {
	entries, err := it.inspector.ListEntries(dir)
	if err != nil {
		logger.Debugf("[scan] Cannot list %s: %v", dir, err)
		return
	}
	for _, entry := range entries {
		if entry.IsDirectory {
			if !skippedDirs[entry.Name] {
				it.collectProjectDirs(filepath.Join(dir, entry.Name), found)
			}
			continue
		}
		if entry.Name == entities.ManifestFileName {
			*found = append(*found, dir)
		}
	}
}

func (it *ScanCommand) readManifest(dir string) (*entities.Manifest, error) {
	content, err := it.inspector.ReadFile(filepath.Join(dir, entities.ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}
	manifest, err := entities.ParseManifest(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}
	return manifest, nil
}

func (it *ScanCommand) buildProject(ctx context.Context, dir string, manifest *entities.Manifest) entities.Project {
	settings := it.settingsRepo.Load(dir)

	name := manifest.Name
	if name == "" {
		name = filepath.Base(dir)
	}

	return entities.Project{
		Name:            name,
		Path:            dir,
		License:         manifest.License,
		PackageManager:  it.detect.Execute(ctx, dir),
		Dependencies:    it.enrich.Execute(ctx, dir, manifest.Dependencies, settings),
		DevDependencies: it.enrich.Execute(ctx, dir, manifest.DevDependencies, settings),
		Scripts:         manifest.Scripts,
		UpdateSettings:  settings,
	}
}

// isNestedIn reports whether dir lies strictly below one of the parents.
func isNestedIn(dir string, parents []string) bool {
	for _, parent := range parents {
		prefix := parent
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		if strings.HasPrefix(dir, prefix) {
			return true
		}
	}
	return false
}
