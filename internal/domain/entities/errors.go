package entities

import "errors"

// Recoverable failure kinds. The detection and enrichment pipelines wrap these
// when a single signal or lookup fails and carry on with a degraded result.
var (
	ErrSignalUnavailable   = errors.New("detection signal unavailable")
	ErrRegistryUnreachable = errors.New("package registry unreachable")
	ErrInvalidVersion      = errors.New("invalid semantic version")
)

// ErrNoUpdates is returned by bulk updates when no project has a visible update.
var ErrNoUpdates = errors.New("no updates available according to current notification settings")

// ErrScriptNotFound is returned when no selected project defines the requested script.
var ErrScriptNotFound = errors.New("no project defines the requested script")
