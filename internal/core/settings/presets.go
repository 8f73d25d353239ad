package settings

import (
	"strconv"
	"strings"

	"interviewtimer/internal/core/model"
)

// DefaultSoundURL is the chime used until the user picks another sound.
const DefaultSoundURL = "https://assets.mixkit.co/active_storage/sfx/212/212-preview.mp3"

// BeepPreset is one selectable beep interval.
type BeepPreset struct {
	Label   string
	Seconds int
}

// BeepPresets lists the selectable beep intervals in display order.
var BeepPresets = []BeepPreset{
	{Label: "Every 5 seconds (Very Annoying)", Seconds: 5},
	{Label: "Every 10 seconds (Annoying)", Seconds: 10},
	{Label: "Every 15 seconds", Seconds: 15},
	{Label: "Every 30 seconds", Seconds: 30},
	{Label: "Every 1 minute", Seconds: 60},
	{Label: "Final minute only", Seconds: model.BeepFinalMinute},
	{Label: "No beeps", Seconds: model.BeepNone},
}

// Sound is a named notification sound.
type Sound struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// DefaultSounds is the built-in sound catalog.
var DefaultSounds = []Sound{
	{Name: "Classic Chime", URL: DefaultSoundURL},
	{Name: "Annoying Alarm", URL: "https://assets.mixkit.co/active_storage/sfx/2869/2869-preview.mp3"},
	{Name: "Harsh Buzzer", URL: "https://assets.mixkit.co/active_storage/sfx/2053/2053-preview.mp3"},
	{Name: "Error Alert", URL: "https://assets.mixkit.co/active_storage/sfx/1021/1021-preview.mp3"},
	{Name: "Screeching Sound", URL: "https://assets.mixkit.co/active_storage/sfx/2170/2170-preview.mp3"},
	{Name: "Police Siren", URL: "https://assets.mixkit.co/active_storage/sfx/1640/1640-preview.mp3"},
}

// ClampDurationMinutes limits minutes to the supported range.
func ClampDurationMinutes(minutes int) int {
	if minutes < model.MinDurationMinutes {
		return model.MinDurationMinutes
	}
	if minutes > model.MaxDurationMinutes {
		return model.MaxDurationMinutes
	}
	return minutes
}

// ParseDurationMinutes converts user input to a valid duration. Anything
// that is not a positive number becomes the minimum.
func ParseDurationMinutes(value string) int {
	minutes, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return model.MinDurationMinutes
	}
	return ClampDurationMinutes(minutes)
}

// ValidBeepInterval reports whether seconds is one of the presets.
func ValidBeepInterval(seconds int) bool {
	for _, preset := range BeepPresets {
		if preset.Seconds == seconds {
			return true
		}
	}
	return false
}

// BeepLabel returns the display label of a preset.
func BeepLabel(seconds int) string {
	for _, preset := range BeepPresets {
		if preset.Seconds == seconds {
			return preset.Label
		}
	}
	return ""
}

// BeepFromLabel is the inverse of BeepLabel.
func BeepFromLabel(label string) (int, bool) {
	for _, preset := range BeepPresets {
		if preset.Label == label {
			return preset.Seconds, true
		}
	}
	return 0, false
}

// NextBeepInterval returns the preset after seconds, wrapping around.
func NextBeepInterval(seconds int) int {
	for i, preset := range BeepPresets {
		if preset.Seconds == seconds {
			return BeepPresets[(i+1)%len(BeepPresets)].Seconds
		}
	}
	return BeepPresets[0].Seconds
}
