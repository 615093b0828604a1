package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// Detect is the interface for package manager detection.
type Detect interface {
	Execute(ctx context.Context, projectDir string) entities.PackageManager
}

// DetectCommand resolves the package manager governing a project directory.
// It never fails: missing or unreadable signals are skipped and npm is the final fallback.
type DetectCommand struct {
	inspector repositories.DirectoryInspector
	prober    repositories.ProcessProber
}

// NewDetectCommand creates a new DetectCommand.
func NewDetectCommand(
	inspector repositories.DirectoryInspector,
	prober repositories.ProcessProber,
) *DetectCommand {
	return &DetectCommand{
		inspector: inspector,
		prober:    prober,
	}
}

// signalGatherer collects one group of evidence from a project directory.
type signalGatherer func(projectDir string) []entities.Evidence

// Execute gathers evidence from lock files, the manifest, config files and installed
// artifacts, then picks the manager with the highest-priority evidence.
func (it *DetectCommand) Execute(ctx context.Context, projectDir string) entities.PackageManager {
	// merge order is fixed; slots keep it independent of completion order
	gatherers := []signalGatherer{
		it.lockFileEvidence,
		it.manifestEvidence,
		it.configFileEvidence,
		it.artifactEvidence,
	}
	slots := make([][]entities.Evidence, len(gatherers))

	var group errgroup.Group
	for i, gather := range gatherers {
		group.Go(func() error {
			slots[i] = gather(projectDir)
			return nil
		})
	}
	_ = group.Wait()

	var evidence []entities.Evidence
	for _, slot := range slots {
		evidence = append(evidence, slot...)
	}

	if pm, ok := entities.SelectPackageManager(evidence); ok {
		logger.Debugf("[detect] %s: %s from %d signal(s)", projectDir, pm, len(evidence))
		return pm
	}

	return it.probeInstalled(ctx, projectDir)
}

// lockFileEvidence records every non-empty lock file.
func (it *DetectCommand) lockFileEvidence(projectDir string) []entities.Evidence {
	var evidence []entities.Evidence
	for _, lock := range entities.LockFiles() {
		path := filepath.Join(projectDir, lock.Name)
		info, err := it.inspector.Stat(path)
		if err != nil {
			if it.inspector.Exists(path) {
				logSignalUnavailable(path, err)
			}
			continue
		}
		if info.IsDirectory || info.Size <= 0 {
			continue
		}
		evidence = append(evidence, entities.Evidence{Manager: lock.Manager, Priority: entities.PriorityLockFile})
	}
	return evidence
}

// manifestEvidence reads the packageManager field and the manager-specific sections.
func (it *DetectCommand) manifestEvidence(projectDir string) []entities.Evidence {
	path := filepath.Join(projectDir, entities.ManifestFileName)
	content, err := it.inspector.ReadFile(path)
	if err != nil {
		logSignalUnavailable(path, err)
		return nil
	}
	manifest, err := entities.ParseManifest(content)
	if err != nil {
		logSignalUnavailable(path, err)
		return nil
	}

	var evidence []entities.Evidence
	if pm, ok := manifest.DeclaredPackageManager(); ok {
		evidence = append(evidence, entities.Evidence{Manager: pm, Priority: entities.PriorityDeclaration})
	}
	if manifest.HasYarnSection {
		evidence = append(evidence, entities.Evidence{Manager: entities.PackageManagerYarn, Priority: entities.PriorityHint})
	}
	if manifest.HasPnpmSection {
		evidence = append(evidence, entities.Evidence{Manager: entities.PackageManagerPnpm, Priority: entities.PriorityHint})
	}
	return evidence
}

func (it *DetectCommand) configFileEvidence(projectDir string) []entities.Evidence {
	return it.presenceEvidence(projectDir, entities.ConfigFiles())
}

func (it *DetectCommand) artifactEvidence(projectDir string) []entities.Evidence {
	return it.presenceEvidence(filepath.Join(projectDir, entities.NodeModulesDir), entities.ArtifactMarkers())
}

func (it *DetectCommand) presenceEvidence(dir string, files []entities.PackageManagerFile) []entities.Evidence {
	var evidence []entities.Evidence
	for _, file := range files {
		if it.inspector.Exists(filepath.Join(dir, file.Name)) {
			evidence = append(evidence, entities.Evidence{Manager: file.Manager, Priority: entities.PriorityHint})
		}
	}
	return evidence
}

// probeInstalled falls back to the first manager callable on this machine.
func (it *DetectCommand) probeInstalled(ctx context.Context, projectDir string) entities.PackageManager {
	for _, pm := range entities.ProbeOrder() {
		if it.prober.ProbeVersion(ctx, string(pm)) {
			logger.Debugf("[detect] %s: no evidence, using installed %s", projectDir, pm)
			return pm
		}
	}
	logger.Debugf("[detect] %s: no evidence and no manager responded, using npm", projectDir)
	return entities.PackageManagerNpm
}

func logSignalUnavailable(path string, err error) {
	logger.Debug(fmt.Errorf("%w: %s: %w", entities.ErrSignalUnavailable, path, err))
}
