package entities

import (
	"fmt"
	"sort"

	"github.com/kballard/go-shellquote"
)

// PackageManager identifies the tool that installs and updates a project's dependencies.
type PackageManager string

const (
	PackageManagerNpm  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPnpm PackageManager = "pnpm"
	PackageManagerBun  PackageManager = "bun"
)

// Evidence priorities, highest confidence first.
const (
	PriorityLockFile    = 3
	PriorityDeclaration = 2
	PriorityHint        = 1
)

// PackageManagerFile maps a file name to the manager it indicates.
type PackageManagerFile struct {
	Name    string
	Manager PackageManager
}

// LockFiles returns the known lock files in detection order.
func LockFiles() []PackageManagerFile {
	return []PackageManagerFile{
		{Name: "package-lock.json", Manager: PackageManagerNpm},
		{Name: "yarn.lock", Manager: PackageManagerYarn},
		{Name: "pnpm-lock.yaml", Manager: PackageManagerPnpm},
		{Name: "bun.lockb", Manager: PackageManagerBun},
	}
}

// ConfigFiles returns the manager-specific configuration files in detection order.
func ConfigFiles() []PackageManagerFile {
	return []PackageManagerFile{
		{Name: ".npmrc", Manager: PackageManagerNpm},
		{Name: ".yarnrc", Manager: PackageManagerYarn},
		{Name: ".yarnrc.yml", Manager: PackageManagerYarn},
		{Name: ".pnpmfile.cjs", Manager: PackageManagerPnpm},
		{Name: "pnpm-workspace.yaml", Manager: PackageManagerPnpm},
		{Name: "bunfig.toml", Manager: PackageManagerBun},
	}
}

// ArtifactMarkers returns the marker directories inside node_modules left by specific managers.
func ArtifactMarkers() []PackageManagerFile {
	return []PackageManagerFile{
		{Name: ".yarn", Manager: PackageManagerYarn},
		{Name: ".pnpm", Manager: PackageManagerPnpm},
	}
}

// ProbeOrder is the preference order used when no evidence exists at all.
func ProbeOrder() []PackageManager {
	return []PackageManager{
		PackageManagerPnpm,
		PackageManagerYarn,
		PackageManagerBun,
		PackageManagerNpm,
	}
}

// AllPackageManagers returns every supported manager.
func AllPackageManagers() []PackageManager {
	return []PackageManager{
		PackageManagerNpm,
		PackageManagerYarn,
		PackageManagerPnpm,
		PackageManagerBun,
	}
}

// ParsePackageManager converts a name into a PackageManager.
func ParsePackageManager(name string) (PackageManager, error) {
	for _, pm := range AllPackageManagers() {
		if string(pm) == name {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unknown package manager: %q", name)
}

// Evidence is a single detection signal for a package manager.
type Evidence struct {
	Manager  PackageManager
	Priority int
}

// SelectPackageManager picks the manager of the highest-priority evidence.
// Ties keep the order in which the evidence was collected.
// The boolean is false when there is no evidence.
func SelectPackageManager(evidence []Evidence) (PackageManager, bool) {
	if len(evidence) == 0 {
		return "", false
	}

	ranked := make([]Evidence, len(evidence))
	copy(ranked, evidence)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})
	return ranked[0].Manager, true
}

// CommandAction is an operation issued to a package manager.
type CommandAction string

const (
	ActionInstall    CommandAction = "install"
	ActionUpdate     CommandAction = "update"
	ActionAdd        CommandAction = "add"
	ActionAddDev     CommandAction = "add-dev"
	ActionRemove     CommandAction = "remove"
	ActionBulkUpdate CommandAction = "bulk-update"
	ActionRun        CommandAction = "run"
)

//nolint:gochecknoglobals // static command table
var commandTemplates = map[PackageManager]map[CommandAction]string{
	PackageManagerNpm: {
		ActionInstall:    "npm install",
		ActionUpdate:     "npm update",
		ActionAdd:        "npm install --save",
		ActionAddDev:     "npm install --save-dev",
		ActionRemove:     "npm uninstall",
		ActionBulkUpdate: "npm install",
		ActionRun:        "npm run",
	},
	PackageManagerYarn: {
		ActionInstall:    "yarn install",
		ActionUpdate:     "yarn upgrade",
		ActionAdd:        "yarn add",
		ActionAddDev:     "yarn add -D",
		ActionRemove:     "yarn remove",
		ActionBulkUpdate: "yarn add",
		ActionRun:        "yarn run",
	},
	PackageManagerPnpm: {
		ActionInstall:    "pnpm install",
		ActionUpdate:     "pnpm update",
		ActionAdd:        "pnpm add",
		ActionAddDev:     "pnpm add -D",
		ActionRemove:     "pnpm remove",
		ActionBulkUpdate: "pnpm add",
		ActionRun:        "pnpm run",
	},
	PackageManagerBun: {
		ActionInstall:    "bun install",
		ActionUpdate:     "bun update",
		ActionAdd:        "bun add",
		ActionAddDev:     "bun add -d",
		ActionRemove:     "bun remove",
		ActionBulkUpdate: "bun add",
		ActionRun:        "bun run",
	},
}

// Command returns the command line for the given action.
// Unknown managers fall back to npm.
func (pm PackageManager) Command(action CommandAction) string {
	templates, ok := commandTemplates[pm]
	if !ok {
		templates = commandTemplates[PackageManagerNpm]
	}
	return templates[action]
}

// AddCommand returns the command that adds a package, optionally pinned to a version.
func (pm PackageManager) AddCommand(name, version string, dev bool) string {
	action := ActionAdd
	if dev {
		action = ActionAddDev
	}
	return pm.Command(action) + " " + packageSpec(name, version)
}

// packageSpec is shell-quoted: names and versions come from manifests and the command line.
func packageSpec(name, version string) string {
	if version == "" {
		return shellquote.Join(name)
	}
	return shellquote.Join(name + "@" + version)
}

// RemoveCommand returns the command that removes a package.
func (pm PackageManager) RemoveCommand(name string) string {
	return pm.Command(ActionRemove) + " " + shellquote.Join(name)
}

// BulkUpdateCommand returns the command that moves a package to a version, or to the
// latest release when version is empty.
func (pm PackageManager) BulkUpdateCommand(name, version string) string {
	return pm.Command(ActionBulkUpdate) + " " + packageSpec(name, version)
}

// RunCommand returns the command that runs a manifest script.
func (pm PackageManager) RunCommand(script string) string {
	return pm.Command(ActionRun) + " " + shellquote.Join(script)
}
