//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/devmanager/internal/domain/commands"
	"github.com/rios0rios0/devmanager/internal/domain/entities"
	doubles "github.com/rios0rios0/devmanager/test/infrastructure/repositorydoubles"
)

func TestNotifyCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should save a valid level", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.StubUpdateSettingsRepository{}
		cmd := commands.NewNotifyCommand(repo)

		// when
		settings, err := cmd.Execute("/ws/app", "patch")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.NotifyPatch, settings.NotificationLevel)
		assert.Equal(t, []doubles.SavedSettings{
			{ProjectPath: "/ws/app", Settings: entities.UpdateNotificationSettings{NotificationLevel: entities.NotifyPatch}},
		}, repo.Saved)
	})

	t.Run("should reject an unknown level without saving", func(t *testing.T) {
		t.Parallel()

		// given
		repo := &doubles.StubUpdateSettingsRepository{}
		cmd := commands.NewNotifyCommand(repo)

		// when
		_, err := cmd.Execute("/ws/app", "daily")

		// then
		require.Error(t, err)
		assert.Empty(t, repo.Saved)
	})

	t.Run("should wrap save failures", func(t *testing.T) {
		t.Parallel()

		// given
		saveErr := errors.New("read-only file system")
		repo := &doubles.StubUpdateSettingsRepository{SaveErr: saveErr}
		cmd := commands.NewNotifyCommand(repo)

		// when
		_, err := cmd.Execute("/ws/app", "all")

		// then
		require.ErrorIs(t, err, saveErr)
	})
}
