package timekeeper

import (
	"time"

	"interviewtimer/internal/core/model"
)

// State represents the current TimeKeeper mode.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventBeep        EventType = "beep"
	EventCompletion  EventType = "completion"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type  EventType
	State State
	Mode  model.Mode
	// Value is the remaining (countdown) or elapsed (stopwatch) seconds.
	Value             int
	Display           string
	SecondsSinceStart int
	SessionID         string
	At                time.Time
}

// Snapshot is a point-in-time copy of the TimeKeeper state.
type Snapshot struct {
	State     State
	Value     int
	Display   string
	SessionID string
	Config    model.TimerConfig
}
