package entities

import "strings"

// DeclaredDependency is one entry of a manifest's dependencies or devDependencies.
type DeclaredDependency struct {
	Name         string
	VersionRange string
	Dev          bool
}

// DependencyRecord is a declared dependency annotated with installation and update status.
type DependencyRecord struct {
	Name              string
	VersionRange      string
	Version           string // installed version, or the declared range without ^/~
	CurrentVersion    string // empty when not installed
	LatestVersion     string // empty when the registry lookup failed
	UpdateType        UpdateClassification
	HasUpdate         bool
	IsInstalled       bool
	Dev               bool
	AvailableVersions []string // descending
}

// NewFallbackRecord builds the record used when no installation or registry data is available.
func NewFallbackRecord(dep DeclaredDependency) DependencyRecord {
	return DependencyRecord{
		Name:              dep.Name,
		VersionRange:      dep.VersionRange,
		Version:           StripRangePrefix(dep.VersionRange),
		Dev:               dep.Dev,
		AvailableVersions: []string{},
	}
}

// StripRangePrefix removes a single leading caret or tilde.
func StripRangePrefix(versionRange string) string {
	if strings.HasPrefix(versionRange, "^") || strings.HasPrefix(versionRange, "~") {
		return versionRange[1:]
	}
	return versionRange
}
