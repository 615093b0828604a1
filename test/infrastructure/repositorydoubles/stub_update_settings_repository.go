//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sync"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

// StubUpdateSettingsRepository implements repositories.UpdateSettingsRepository in memory.
type StubUpdateSettingsRepository struct {
	Settings map[string]entities.UpdateNotificationSettings
	SaveErr  error

	mu    sync.Mutex
	Saved []SavedSettings
}

// SavedSettings records a single invocation of Save.
type SavedSettings struct {
	ProjectPath string
	Settings    entities.UpdateNotificationSettings
}

var _ repositories.UpdateSettingsRepository = (*StubUpdateSettingsRepository)(nil)

func (s *StubUpdateSettingsRepository) Load(projectPath string) entities.UpdateNotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if settings, ok := s.Settings[projectPath]; ok {
		return settings
	}
	return entities.DefaultUpdateSettings()
}

func (s *StubUpdateSettingsRepository) Save(projectPath string, settings entities.UpdateNotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saved = append(s.Saved, SavedSettings{ProjectPath: projectPath, Settings: settings})
	return s.SaveErr
}
