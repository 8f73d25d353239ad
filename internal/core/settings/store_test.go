package settings

import (
	"testing"

	"interviewtimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"30", 30},
		{" 45 ", 45},
		{"1", 1},
		{"120", 120},
		{"121", 120},
		{"9999", 120},
		{"0", 1},
		{"-5", 1},
		{"", 1},
		{"abc", 1},
		{"2.5", 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseDurationMinutes(tc.input), "input=%q", tc.input)
	}
}

func TestTimerConfig(t *testing.T) {
	s := DefaultSettings()
	s.AutoRestart = true
	config := s.TimerConfig()
	assert.Equal(t, model.ModeCountdown, config.Mode)
	assert.Equal(t, 1800, config.DurationSeconds)
	assert.Equal(t, 60, config.BeepIntervalSeconds)
	assert.True(t, config.AutoRestart)

	s.Mode = model.ModeStopwatch
	assert.False(t, s.TimerConfig().AutoRestart, "auto-restart is countdown only")

	s.DurationMinutes = 500
	assert.Equal(t, 120*60, s.TimerConfig().DurationSeconds)
}

func TestBeepPresets(t *testing.T) {
	assert.True(t, ValidBeepInterval(15))
	assert.True(t, ValidBeepInterval(model.BeepFinalMinute))
	assert.True(t, ValidBeepInterval(model.BeepNone))
	assert.False(t, ValidBeepInterval(7))

	seconds, ok := BeepFromLabel(BeepLabel(model.BeepFinalMinute))
	require.True(t, ok)
	assert.Equal(t, model.BeepFinalMinute, seconds)

	_, ok = BeepFromLabel("Every 3 hours")
	assert.False(t, ok)

	assert.Equal(t, 10, NextBeepInterval(5))
	assert.Equal(t, BeepPresets[0].Seconds, NextBeepInterval(model.BeepNone))
	assert.Equal(t, BeepPresets[0].Seconds, NextBeepInterval(7))
}

func TestStoreApplyNormalizes(t *testing.T) {
	store := NewStore(DefaultSettings(), nil)

	accepted := store.Apply(Settings{
		Mode:            "hourglass",
		DurationMinutes: 0,
		BackgroundColor: "not-a-color",
		TextColor:       "#00ff00",
		SoundURL:        "https://example.com/unknown.mp3",
		BeepInterval:    42,
		AutoRestart:     true,
	})

	assert.Equal(t, model.ModeCountdown, accepted.Mode)
	assert.Equal(t, 1, accepted.DurationMinutes)
	assert.Equal(t, "not-a-color", accepted.BackgroundColor, "colors pass through")
	assert.Equal(t, "#00ff00", accepted.TextColor)
	assert.Equal(t, DefaultSoundURL, accepted.SoundURL)
	assert.Equal(t, 60, accepted.BeepInterval)
	assert.True(t, accepted.AutoRestart)
	assert.Equal(t, accepted, store.Current())
}

func TestStoreNotifiesListeners(t *testing.T) {
	store := NewStore(DefaultSettings(), nil)

	var received []Settings
	store.OnChange(func(s Settings) {
		received = append(received, s)
	})

	store.Update(func(s *Settings) {
		s.DurationMinutes = 200
		s.Mode = model.ModeStopwatch
	})

	require.Len(t, received, 1)
	assert.Equal(t, 120, received[0].DurationMinutes)
	assert.Equal(t, model.ModeStopwatch, received[0].Mode)
}

func TestStoreSoundCatalog(t *testing.T) {
	extra := []Sound{
		{Name: "Gong", URL: "https://example.com/gong.mp3"},
		{URL: "https://example.com/bell.mp3"},
		{Name: "Duplicate", URL: DefaultSoundURL},
		{Name: "Empty"},
	}
	initial := DefaultSettings()
	initial.SoundURL = "https://example.com/gong.mp3"
	store := NewStore(initial, extra)

	sounds := store.Sounds()
	require.Len(t, sounds, len(DefaultSounds)+2)
	assert.Equal(t, "https://example.com/gong.mp3", store.Current().SoundURL)
	assert.Equal(t, "Gong", store.SoundName("https://example.com/gong.mp3"))
	assert.Equal(t, "https://example.com/bell.mp3", store.SoundName("https://example.com/bell.mp3"))
	assert.Equal(t, "Classic Chime", store.SoundName(DefaultSoundURL))

	store.AddSounds([]Sound{{Name: "Horn", URL: "https://example.com/horn.mp3"}})
	accepted := store.Update(func(s *Settings) { s.SoundURL = "https://example.com/horn.mp3" })
	assert.Equal(t, "https://example.com/horn.mp3", accepted.SoundURL)
}
