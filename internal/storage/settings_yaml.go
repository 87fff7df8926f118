package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"tomatick/internal/core/model"
)

const settingsFileName = "settings.yaml"

// Settings defines startup configuration. Duration adjustments made in
// the UI are intentionally not written back; the file only seeds the
// timer at launch.
type Settings struct {
	Timer    model.TimerConfig
	ShowTray bool
}

// DefaultSettings returns default settings for Tomatick.
func DefaultSettings() Settings {
	return Settings{
		Timer:    model.DefaultConfig(),
		ShowTray: true,
	}
}

type yamlSettings struct {
	WorkMinutes  int   `yaml:"work_minutes"`
	BreakMinutes int   `yaml:"break_minutes"`
	ShowTray     *bool `yaml:"show_tray"`
}

// LoadSettings reads startup settings from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (Settings, error) {
	settings := DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.Timer.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		settings.Timer.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if fileData.ShowTray != nil {
		settings.ShowTray = *fileData.ShowTray
	}
	settings.Timer = settings.Timer.Normalize()
}
