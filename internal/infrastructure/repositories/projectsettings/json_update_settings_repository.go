package projectsettings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/rios0rios0/devmanager/internal/domain/entities"
	"github.com/rios0rios0/devmanager/internal/domain/repositories"
)

const (
	// FileName is the per-project settings file.
	FileName = ".dev-manager.json"

	settingsKey = "updateSettings"
)

// JSONUpdateSettingsRepository stores notification settings in <project>/.dev-manager.json
// under the "updateSettings" key.
type JSONUpdateSettingsRepository struct {
	inspector repositories.DirectoryInspector
}

// NewJSONUpdateSettingsRepository creates a new JSONUpdateSettingsRepository.
func NewJSONUpdateSettingsRepository(inspector repositories.DirectoryInspector) *JSONUpdateSettingsRepository {
	return &JSONUpdateSettingsRepository{inspector: inspector}
}

func (it *JSONUpdateSettingsRepository) Load(projectPath string) entities.UpdateNotificationSettings {
	content, err := it.inspector.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil || !gjson.ValidBytes(content) {
		return entities.DefaultUpdateSettings()
	}

	raw := gjson.GetBytes(content, settingsKey+".notificationLevel").String()
	level, err := entities.ParseNotificationLevel(raw)
	if err != nil {
		if raw != "" {
			logger.Warnf("Ignoring %s in %s: %v", FileName, projectPath, err)
		}
		return entities.DefaultUpdateSettings()
	}
	return entities.UpdateNotificationSettings{NotificationLevel: level}
}

// Save replaces the "updateSettings" key and keeps every other key in its position.
// An unreadable or invalid existing file is replaced.
func (it *JSONUpdateSettingsRepository) Save(projectPath string, settings entities.UpdateNotificationSettings) error {
	path := filepath.Join(projectPath, FileName)

	encoded, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	var existing gjson.Result
	if content, readErr := it.inspector.ReadFile(path); readErr == nil && gjson.ValidBytes(content) {
		existing = gjson.ParseBytes(content)
	}

	var entries []string
	replaced := false
	if existing.IsObject() {
		existing.ForEach(func(key, value gjson.Result) bool {
			raw := value.Raw
			if key.String() == settingsKey {
				raw = string(encoded)
				replaced = true
			}
			entries = append(entries, key.Raw+":"+raw)
			return true
		})
	}
	if !replaced {
		entries = append(entries, `"`+settingsKey+`":`+string(encoded))
	}

	var indented bytes.Buffer
	if indentErr := json.Indent(&indented, []byte("{"+strings.Join(entries, ",")+"}"), "", "  "); indentErr != nil {
		return fmt.Errorf("failed to encode settings: %w", indentErr)
	}

	if writeErr := it.inspector.WriteFile(path, indented.Bytes()); writeErr != nil {
		return fmt.Errorf("failed to save update settings: %w", writeErr)
	}
	return nil
}

var _ repositories.UpdateSettingsRepository = (*JSONUpdateSettingsRepository)(nil)
