package entities

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// UpdateClassification is the magnitude of an available update.
type UpdateClassification string

const (
	UpdateNone       UpdateClassification = ""
	UpdateMajor      UpdateClassification = "major"
	UpdateMinor      UpdateClassification = "minor"
	UpdatePatch      UpdateClassification = "patch"
	UpdatePrerelease UpdateClassification = "prerelease"
)

// NotificationLevel controls which update magnitudes are surfaced for a project.
type NotificationLevel string

const (
	NotifyMajor      NotificationLevel = "major"
	NotifyMinor      NotificationLevel = "minor"
	NotifyPatch      NotificationLevel = "patch"
	NotifyPrerelease NotificationLevel = "prerelease"
	NotifyAll        NotificationLevel = "all"
	NotifyNone       NotificationLevel = "none"
)

// DefaultNotificationLevel applies when a project has no stored preference.
const DefaultNotificationLevel = NotifyMinor

// NotificationLevels returns every valid level.
func NotificationLevels() []NotificationLevel {
	return []NotificationLevel{NotifyMajor, NotifyMinor, NotifyPatch, NotifyPrerelease, NotifyAll, NotifyNone}
}

// ParseNotificationLevel validates a level name.
func ParseNotificationLevel(raw string) (NotificationLevel, error) {
	for _, level := range NotificationLevels() {
		if string(level) == raw {
			return level, nil
		}
	}
	return "", fmt.Errorf("invalid notification level %q", raw)
}

// UpdateNotificationSettings is the per-project notification policy.
type UpdateNotificationSettings struct {
	NotificationLevel NotificationLevel `json:"notificationLevel"`
}

// DefaultUpdateSettings returns the policy used for projects without stored settings.
func DefaultUpdateSettings() UpdateNotificationSettings {
	return UpdateNotificationSettings{NotificationLevel: DefaultNotificationLevel}
}

// Level returns the configured level, or the default when unset.
func (s UpdateNotificationSettings) Level() NotificationLevel {
	if s.NotificationLevel == "" {
		return DefaultNotificationLevel
	}
	return s.NotificationLevel
}

// ParseVersion parses a strict semantic version. A leading "v" or "=" is accepted.
func ParseVersion(raw string) (*semver.Version, error) {
	cleaned := strings.TrimLeft(strings.TrimSpace(raw), "=v")
	version, err := semver.StrictNewVersion(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, raw)
	}
	return version, nil
}

// ClassifyUpdate reports the magnitude of the update from installed to latest.
// It returns UpdateNone when either version is invalid or latest is not newer.
//
// Moving from a prerelease to the plain release of the same version
// (1.0.0-alpha -> 1.0.0) also yields UpdateNone.
func ClassifyUpdate(installed, latest string) UpdateClassification {
	current, err := ParseVersion(installed)
	if err != nil {
		return UpdateNone
	}
	candidate, err := ParseVersion(latest)
	if err != nil {
		return UpdateNone
	}
	if !candidate.GreaterThan(current) {
		return UpdateNone
	}

	switch {
	case candidate.Major() > current.Major():
		return UpdateMajor
	case candidate.Major() == current.Major() && candidate.Minor() > current.Minor():
		return UpdateMinor
	case candidate.Major() == current.Major() && candidate.Minor() == current.Minor() &&
		candidate.Patch() > current.Patch():
		return UpdatePatch
	case candidate.Prerelease() != "" && (current.Prerelease() == "" || candidate.GreaterThan(current)):
		return UpdatePrerelease
	default:
		return UpdateNone
	}
}

// ShouldNotify decides whether an update of the given magnitude is surfaced under settings.
func ShouldNotify(classification UpdateClassification, settings UpdateNotificationSettings) bool {
	if classification == UpdateNone {
		return false
	}

	switch settings.Level() {
	case NotifyNone:
		return false
	case NotifyMajor:
		return classification == UpdateMajor
	case NotifyMinor:
		return classification == UpdateMajor || classification == UpdateMinor
	case NotifyPatch:
		return classification == UpdateMajor || classification == UpdateMinor || classification == UpdatePatch
	case NotifyPrerelease, NotifyAll:
		return true
	default:
		return true
	}
}
