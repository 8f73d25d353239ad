package control

import (
	"context"
	"sync"
	"testing"
	"time"

	"interviewtimer/internal/core/model"
	"interviewtimer/internal/core/settings"
	"interviewtimer/internal/core/timekeeper"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAlerter struct {
	mu          sync.Mutex
	beeps       []string
	completions []string
}

func (alerter *recordingAlerter) Notify(url string) {
	alerter.mu.Lock()
	defer alerter.mu.Unlock()
	alerter.beeps = append(alerter.beeps, url)
}

func (alerter *recordingAlerter) NotifyCompletion(url string) {
	alerter.mu.Lock()
	defer alerter.mu.Unlock()
	alerter.completions = append(alerter.completions, url)
}

func (alerter *recordingAlerter) counts() (int, int) {
	alerter.mu.Lock()
	defer alerter.mu.Unlock()
	return len(alerter.beeps), len(alerter.completions)
}

func newTestController(t *testing.T, initial settings.Settings) (*Controller, *recordingAlerter, clockwork.Clock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	store := settings.NewStore(initial, nil)
	keeper := timekeeper.New(store.Current().TimerConfig(), timekeeper.Config{Clock: clock})
	alerter := &recordingAlerter{}
	controller := New(store, keeper, alerter)

	ctx, cancel := context.WithCancel(context.Background())
	go controller.Run(ctx)
	t.Cleanup(func() {
		cancel()
		controller.Close()
	})
	return controller, alerter, clock
}

func shortCountdown() settings.Settings {
	initial := settings.DefaultSettings()
	initial.DurationMinutes = 1
	initial.BeepInterval = 15
	return initial
}

func TestToggleStartsAndPauses(t *testing.T) {
	controller, _, _ := newTestController(t, shortCountdown())

	controller.Toggle()
	assert.Equal(t, timekeeper.StateRunning, controller.Snapshot().State)

	controller.Toggle()
	assert.Equal(t, timekeeper.StatePaused, controller.Snapshot().State)

	controller.Reset()
	snap := controller.Snapshot()
	assert.Equal(t, timekeeper.StateIdle, snap.State)
	assert.Equal(t, "01:00", snap.Display)
}

func TestSettingsChangeResetsRunningTimer(t *testing.T) {
	controller, _, _ := newTestController(t, shortCountdown())
	controller.Start()

	controller.Settings().Update(func(s *settings.Settings) {
		s.DurationMinutes = 5
	})
	snap := controller.Snapshot()
	assert.Equal(t, timekeeper.StateIdle, snap.State)
	assert.Equal(t, 300, snap.Value)

	controller.Settings().Update(func(s *settings.Settings) {
		s.Mode = model.ModeStopwatch
	})
	assert.Equal(t, 0, controller.Snapshot().Value)
}

func TestSettingsChangeKeepsRunForBeepInterval(t *testing.T) {
	controller, _, _ := newTestController(t, shortCountdown())
	controller.Start()

	controller.Settings().Update(func(s *settings.Settings) {
		s.BeepInterval = 5
	})
	snap := controller.Snapshot()
	assert.Equal(t, timekeeper.StateRunning, snap.State)
	assert.Equal(t, 5, snap.Config.BeepIntervalSeconds)
}

func TestEventsRouteToAlerter(t *testing.T) {
	controller, alerter, clock := newTestController(t, shortCountdown())
	fake := clock.(interface{ Advance(time.Duration) })
	controller.Start()

	require.Eventually(t, func() bool {
		fake.Advance(time.Second)
		_, completions := alerter.counts()
		return completions == 1
	}, 5*time.Second, 2*time.Millisecond)

	beeps, _ := alerter.counts()
	assert.Equal(t, 3, beeps)
	alerter.mu.Lock()
	assert.Equal(t, settings.DefaultSoundURL, alerter.completions[0])
	alerter.mu.Unlock()
}

func TestTestSoundUsesAlerter(t *testing.T) {
	controller, alerter, _ := newTestController(t, shortCountdown())
	controller.TestSound("https://example.com/gong.mp3")

	beeps, _ := alerter.counts()
	assert.Equal(t, 1, beeps)
}
