package commands

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// Notify is the interface for changing a project's notification level.
type Notify interface {
	Execute(projectPath, level string) (entities.UpdateNotificationSettings, error)
}

// NotifyCommand validates and stores a project's notification level.
type NotifyCommand struct {
	settingsRepo repositories.UpdateSettingsRepository
}

// NewNotifyCommand creates a new NotifyCommand.
func NewNotifyCommand(settingsRepo repositories.UpdateSettingsRepository) *NotifyCommand {
	return &NotifyCommand{settingsRepo: settingsRepo}
}

// Execute saves level as the notification level of the project at projectPath.
func (it *NotifyCommand) Execute(projectPath, level string) (entities.UpdateNotificationSettings, error) {
	parsed, err := entities.ParseNotificationLevel(level)
	if err != nil {
		return entities.UpdateNotificationSettings{}, err
	}

	settings := entities.UpdateNotificationSettings{NotificationLevel: parsed}
	if saveErr := it.settingsRepo.Save(projectPath, settings); saveErr != nil {
		return entities.UpdateNotificationSettings{}, fmt.Errorf("failed to save update settings: %w", saveErr)
	}

	logger.Infof("Notification level of %s set to %s", projectPath, parsed)
	return settings, nil
}
