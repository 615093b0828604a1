package repositories

import "github.com/rios0rios0/devmanager/internal/domain/entities"

// UpdateSettingsRepository persists the per-project notification policy.
type UpdateSettingsRepository interface {
	// Load returns the stored settings of a project, or the defaults when none are stored
	// or the stored value is invalid.
	Load(projectPath string) entities.UpdateNotificationSettings

	// Save stores settings for a project, keeping unrelated keys of the settings file.
	Save(projectPath string, settings entities.UpdateNotificationSettings) error
}
