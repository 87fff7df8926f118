package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAppName = "TomatickTest"

func writeSettingsFile(t *testing.T, contents string) {
	t.Helper()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	dir := filepath.Join(configHome, testAppName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte(contents), 0o644))
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings, err := LoadSettings(testAppName)

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoadSettingsAppliesValues(t *testing.T) {
	writeSettingsFile(t, "work_minutes: 50\nbreak_minutes: 10\nshow_tray: false\n")

	settings, err := LoadSettings(testAppName)

	require.NoError(t, err)
	assert.Equal(t, 50*time.Minute, settings.Timer.WorkDuration)
	assert.Equal(t, 10*time.Minute, settings.Timer.BreakDuration)
	assert.False(t, settings.ShowTray)
}

func TestLoadSettingsIgnoresNonPositiveDurations(t *testing.T) {
	writeSettingsFile(t, "work_minutes: 0\nbreak_minutes: -3\n")

	settings, err := LoadSettings(testAppName)

	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, settings.Timer.WorkDuration)
	assert.Equal(t, 5*time.Minute, settings.Timer.BreakDuration)
	assert.True(t, settings.ShowTray)
}

func TestLoadSettingsInvalidYaml(t *testing.T) {
	writeSettingsFile(t, "work_minutes: [not a number\n")

	settings, err := LoadSettings(testAppName)

	require.Error(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}
