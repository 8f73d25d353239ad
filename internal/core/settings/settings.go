package settings

import (
	"interviewtimer/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	Mode            model.Mode
	DurationMinutes int
	BackgroundColor string
	TextColor       string
	SoundURL        string
	BeepInterval    int
	AutoRestart     bool
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		Mode:            model.ModeCountdown,
		DurationMinutes: 30,
		BackgroundColor: "#1a1a1a",
		TextColor:       "#ffffff",
		SoundURL:        DefaultSoundURL,
		BeepInterval:    60,
		AutoRestart:     false,
	}
}

// TimerConfig converts settings to the TimeKeeper snapshot. Auto-restart
// only applies to countdowns.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Mode:                settings.Mode,
		DurationSeconds:     ClampDurationMinutes(settings.DurationMinutes) * 60,
		BeepIntervalSeconds: settings.BeepInterval,
		AutoRestart:         settings.AutoRestart && settings.Mode == model.ModeCountdown,
	}
}
