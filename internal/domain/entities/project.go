package entities

// Project is a Node.js project discovered in the workspace.
type Project struct {
	Name            string
	Path            string
	License         string
	PackageManager  PackageManager
	Dependencies    []DependencyRecord
	DevDependencies []DependencyRecord
	Scripts         []Script
	UpdateSettings  UpdateNotificationSettings
}

// HasUpdates reports whether any dependency has an update admitted by the project's settings.
func (p Project) HasUpdates() bool {
	for _, dep := range p.AllDependencies() {
		if dep.HasUpdate {
			return true
		}
	}
	return false
}

// AllDependencies returns dependencies followed by dev dependencies.
func (p Project) AllDependencies() []DependencyRecord {
	all := make([]DependencyRecord, 0, len(p.Dependencies)+len(p.DevDependencies))
	all = append(all, p.Dependencies...)
	return append(all, p.DevDependencies...)
}

// HasScript reports whether the project defines the named script.
func (p Project) HasScript(name string) bool {
	for _, script := range p.Scripts {
		if script.Name == name {
			return true
		}
	}
	return false
}
