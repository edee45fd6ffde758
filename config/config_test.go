package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.NotEmpty(t, cfg.DatabasePath)
	assert.Equal(t, 20, cfg.Reminder.Hour)
	assert.Equal(t, 0, cfg.Reminder.Minute)
	assert.False(t, cfg.RemoteConfigured())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/store.db")
	t.Setenv("FIRESTORE_PROJECT_ID", "my-project")
	t.Setenv("REMINDER_HOUR", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/store.db", cfg.DatabasePath)
	assert.Equal(t, 8, cfg.Reminder.Hour)
	assert.True(t, cfg.RemoteConfigured())
}

func TestLoadRejectsOutOfRangeReminder(t *testing.T) {
	t.Setenv("REMINDER_HOUR", "25")

	_, err := Load()
	assert.Error(t, err)
}
