package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"interviewtimer/internal/core/model"
	"interviewtimer/internal/core/settings"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "config.yaml"

// Defaults is the startup configuration read from YAML.
type Defaults struct {
	Settings settings.Settings
	Sounds   []settings.Sound
}

type yamlSettings struct {
	Mode                string           `yaml:"mode"`
	DurationMinutes     int              `yaml:"duration_minutes"`
	BackgroundColor     string           `yaml:"background_color"`
	TextColor           string           `yaml:"text_color"`
	SoundURL            string           `yaml:"sound_url"`
	BeepIntervalSeconds *int             `yaml:"beep_interval_seconds"`
	AutoRestart         bool             `yaml:"auto_restart"`
	Sounds              []settings.Sound `yaml:"sounds"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, settingsFileName)
}

// LoadDefaults reads startup defaults from path. A missing file yields the
// built-in defaults. The file is never written back.
func LoadDefaults(path string) (Defaults, error) {
	defaults := Defaults{Settings: settings.DefaultSettings()}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return defaults, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlSettings(&defaults, fileData)
	return defaults, nil
}

func applyYamlSettings(defaults *Defaults, fileData yamlSettings) {
	target := &defaults.Settings
	if mode := model.Mode(fileData.Mode); mode.Valid() {
		target.Mode = mode
	}
	if fileData.DurationMinutes != 0 {
		target.DurationMinutes = settings.ClampDurationMinutes(fileData.DurationMinutes)
	}
	if fileData.BackgroundColor != "" {
		target.BackgroundColor = fileData.BackgroundColor
	}
	if fileData.TextColor != "" {
		target.TextColor = fileData.TextColor
	}
	if fileData.SoundURL != "" {
		target.SoundURL = fileData.SoundURL
	}
	if fileData.BeepIntervalSeconds != nil && settings.ValidBeepInterval(*fileData.BeepIntervalSeconds) {
		target.BeepInterval = *fileData.BeepIntervalSeconds
	}
	target.AutoRestart = fileData.AutoRestart
	defaults.Sounds = fileData.Sounds
}
