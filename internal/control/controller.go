package control

import (
	"context"
	"log/slog"

	"interviewtimer/internal/core/settings"
	"interviewtimer/internal/core/timekeeper"
)

// Alerter plays notification sounds.
type Alerter interface {
	Notify(url string)
	NotifyCompletion(url string)
}

// Controller forwards user intents to the TimeKeeper and routes beep and
// completion events to the Alerter.
type Controller struct {
	store   *settings.Store
	keeper  *timekeeper.TimeKeeper
	alerter Alerter
	events  <-chan timekeeper.Event
}

// New wires store changes into keeper.
func New(store *settings.Store, keeper *timekeeper.TimeKeeper, alerter Alerter) *Controller {
	controller := &Controller{
		store:   store,
		keeper:  keeper,
		alerter: alerter,
		events:  keeper.Subscribe(64),
	}
	store.OnChange(func(updated settings.Settings) {
		keeper.UpdateConfig(updated.TimerConfig())
	})
	return controller
}

// Settings exposes the settings store.
func (controller *Controller) Settings() *settings.Store {
	return controller.store
}

// Snapshot returns the timer state.
func (controller *Controller) Snapshot() timekeeper.Snapshot {
	return controller.keeper.Snapshot()
}

// Subscribe registers a display observer.
func (controller *Controller) Subscribe(buffer int) <-chan timekeeper.Event {
	return controller.keeper.Subscribe(buffer)
}

// Start starts or resumes the timer.
func (controller *Controller) Start() {
	controller.keeper.Start(controller.store.Current().TimerConfig())
}

// Pause pauses the timer.
func (controller *Controller) Pause() {
	controller.keeper.Pause()
}

// Toggle starts a stopped timer or pauses a running one.
func (controller *Controller) Toggle() {
	if controller.keeper.Snapshot().State == timekeeper.StateRunning {
		controller.Pause()
		return
	}
	controller.Start()
}

// Reset stops the timer and restores its initial value.
func (controller *Controller) Reset() {
	controller.keeper.Reset(controller.store.Current().TimerConfig())
}

// TestSound plays the given sound once.
func (controller *Controller) TestSound(url string) {
	controller.alerter.Notify(url)
}

// Run dispatches audio for beep and completion events until ctx ends or
// the TimeKeeper closes.
func (controller *Controller) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-controller.events:
			if !ok {
				return
			}
			controller.dispatch(event)
		}
	}
}

func (controller *Controller) dispatch(event timekeeper.Event) {
	sound := controller.store.Current().SoundURL
	switch event.Type {
	case timekeeper.EventBeep:
		controller.alerter.Notify(sound)
	case timekeeper.EventCompletion:
		slog.Info("timer finished", "session", event.SessionID, "mode", event.Mode)
		controller.alerter.NotifyCompletion(sound)
	}
}

// Close stops the TimeKeeper.
func (controller *Controller) Close() {
	controller.keeper.Close()
}
