package model

// Mode selects how the timer counts.
type Mode string

const (
	ModeCountdown Mode = "countdown"
	ModeStopwatch Mode = "stopwatch"
)

// Valid reports whether mode is a known timer mode.
func (mode Mode) Valid() bool {
	return mode == ModeCountdown || mode == ModeStopwatch
}

const (
	// BeepNone disables periodic beeps.
	BeepNone = 0
	// BeepFinalMinute beeps every second during the last minute of a countdown.
	BeepFinalMinute = -1
)

const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 120
)

// TimerConfig is the snapshot the TimeKeeper runs with.
type TimerConfig struct {
	Mode                Mode
	DurationSeconds     int
	BeepIntervalSeconds int
	AutoRestart         bool
}

// InitialValue is the displayed value of a freshly reset timer.
func (config TimerConfig) InitialValue() int {
	if config.Mode == ModeCountdown {
		return config.DurationSeconds
	}
	return 0
}

// SameRun reports whether two configs describe the same counting run,
// i.e. switching between them does not require a reset.
func (config TimerConfig) SameRun(other TimerConfig) bool {
	return config.Mode == other.Mode && config.DurationSeconds == other.DurationSeconds
}
