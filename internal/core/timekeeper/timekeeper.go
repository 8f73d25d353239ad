package timekeeper

import (
	"log/slog"
	"sync"
	"time"

	"interviewtimer/internal/core/model"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	defaultTickInterval = time.Second
	defaultRestartDelay = 1500 * time.Millisecond
	finalMinuteSeconds  = 60
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	// RestartDelay is the pause between completion and an automatic restart.
	RestartDelay time.Duration
	Clock        clockwork.Clock
}

// TimeKeeper is the countdown/stopwatch state machine. All mutation happens
// under mu; the ticker goroutine and the delayed restart carry the generation
// they were started with and are ignored once it no longer matches.
type TimeKeeper struct {
	mu           sync.Mutex
	config       model.TimerConfig
	options      Config
	state        State
	value        int
	lastBeepMark int
	sessionID    string
	generation   uint64
	stopCh       chan struct{}
	restartTimer clockwork.Timer
	events       []chan Event
	closed       bool
}

// New creates an idle TimeKeeper initialized for config.
func New(config model.TimerConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = defaultTickInterval
	}
	if options.RestartDelay <= 0 {
		options.RestartDelay = defaultRestartDelay
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}

	keeper := &TimeKeeper{options: options}
	keeper.resetLocked(config)
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start begins ticking with config. A mode or duration change reinitializes
// the counter first; starting a completed timer starts a fresh run. Start is
// a no-op while already running.
func (keeper *TimeKeeper) Start(config model.TimerConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	if !keeper.config.SameRun(config) {
		keeper.cancelLocked()
		keeper.resetLocked(config)
	}
	keeper.config = config

	switch keeper.state {
	case StateRunning:
		return
	case StateCompleted:
		keeper.cancelLocked()
		keeper.resetLocked(config)
	}
	keeper.runLocked()
}

// Pause halts ticking and keeps the current value. A pending automatic
// restart is cancelled as well.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if keeper.state == StateCompleted && keeper.restartTimer != nil {
		keeper.cancelLocked()
		return
	}
	if keeper.state != StateRunning {
		return
	}
	keeper.cancelLocked()
	keeper.state = StatePaused
	keeper.emitStateLocked()
}

// Reset stops ticking and reinitializes the counter for config.
func (keeper *TimeKeeper) Reset(config model.TimerConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.cancelLocked()
	keeper.resetLocked(config)
	keeper.emitStateLocked()
}

// UpdateConfig applies a configuration change. Changing the mode or the
// duration stops any run and resets the counter; other fields apply live.
func (keeper *TimeKeeper) UpdateConfig(config model.TimerConfig) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if !keeper.config.SameRun(config) {
		keeper.cancelLocked()
		keeper.resetLocked(config)
		keeper.emitStateLocked()
		return
	}

	keeper.config = config
	if keeper.restartTimer != nil && !keeper.autoRestartLocked() {
		keeper.cancelLocked()
	}
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return Snapshot{
		State:     keeper.state,
		Value:     keeper.value,
		Display:   FormatClock(keeper.value),
		SessionID: keeper.sessionID,
		Config:    keeper.config,
	}
}

// Close stops the TimeKeeper for good and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.cancelLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) run(generation uint64, stopCh <-chan struct{}) {
	ticker := keeper.options.Clock.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.Chan():
			keeper.tick(generation)
		}
	}
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if generation != keeper.generation || keeper.state != StateRunning {
		return
	}
	keeper.advanceLocked()
}

func (keeper *TimeKeeper) advanceLocked() {
	var sinceStart int
	if keeper.config.Mode == model.ModeCountdown {
		if keeper.value <= 1 {
			keeper.completeLocked()
			return
		}
		keeper.value--
		sinceStart = keeper.config.DurationSeconds - keeper.value
	} else {
		keeper.value++
		sinceStart = keeper.value
	}

	keeper.emitLocked(keeper.eventLocked(EventTick, sinceStart))

	if keeper.shouldBeepLocked(sinceStart) {
		keeper.lastBeepMark = sinceStart
		keeper.emitLocked(keeper.eventLocked(EventBeep, sinceStart))
	}
}

func (keeper *TimeKeeper) shouldBeepLocked(sinceStart int) bool {
	if sinceStart == keeper.lastBeepMark {
		return false
	}
	interval := keeper.config.BeepIntervalSeconds
	switch {
	case interval > 0:
		return sinceStart%interval == 0
	case interval == model.BeepFinalMinute:
		return keeper.config.Mode == model.ModeCountdown && keeper.value <= finalMinuteSeconds
	default:
		return false
	}
}

func (keeper *TimeKeeper) completeLocked() {
	keeper.value = 0
	keeper.cancelLocked()
	keeper.state = StateCompleted
	keeper.emitLocked(keeper.eventLocked(EventCompletion, keeper.config.DurationSeconds))
	slog.Debug("timer completed", "session", keeper.sessionID, "auto_restart", keeper.autoRestartLocked())

	if !keeper.autoRestartLocked() {
		return
	}
	generation := keeper.generation
	keeper.restartTimer = keeper.options.Clock.AfterFunc(keeper.options.RestartDelay, func() {
		keeper.restart(generation)
	})
}

func (keeper *TimeKeeper) restart(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed || generation != keeper.generation || keeper.state != StateCompleted {
		return
	}
	keeper.restartTimer = nil
	keeper.resetLocked(keeper.config)
	keeper.runLocked()
}

func (keeper *TimeKeeper) autoRestartLocked() bool {
	return keeper.config.AutoRestart && keeper.config.Mode == model.ModeCountdown
}

// runLocked transitions to Running and spawns the ticker for a new generation.
func (keeper *TimeKeeper) runLocked() {
	keeper.cancelLocked()
	if keeper.sessionID == "" {
		keeper.sessionID = uuid.NewString()
		slog.Debug("timer session started", "session", keeper.sessionID, "mode", keeper.config.Mode)
	}
	keeper.state = StateRunning
	keeper.stopCh = make(chan struct{})
	go keeper.run(keeper.generation, keeper.stopCh)
	keeper.emitStateLocked()
}

// cancelLocked stops the active ticker and any pending restart and
// invalidates callbacks belonging to the previous generation.
func (keeper *TimeKeeper) cancelLocked() {
	keeper.generation++
	if keeper.stopCh != nil {
		close(keeper.stopCh)
		keeper.stopCh = nil
	}
	if keeper.restartTimer != nil {
		keeper.restartTimer.Stop()
		keeper.restartTimer = nil
	}
}

func (keeper *TimeKeeper) resetLocked(config model.TimerConfig) {
	keeper.config = config
	keeper.state = StateIdle
	keeper.value = config.InitialValue()
	keeper.lastBeepMark = 0
	keeper.sessionID = ""
}

func (keeper *TimeKeeper) eventLocked(eventType EventType, sinceStart int) Event {
	return Event{
		Type:              eventType,
		State:             keeper.state,
		Mode:              keeper.config.Mode,
		Value:             keeper.value,
		Display:           FormatClock(keeper.value),
		SecondsSinceStart: sinceStart,
		SessionID:         keeper.sessionID,
		At:                keeper.options.Clock.Now(),
	}
}

func (keeper *TimeKeeper) emitStateLocked() {
	keeper.emitLocked(keeper.eventLocked(EventStateChange, 0))
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
