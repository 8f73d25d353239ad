package main

import (
	"fmt"
	"log/slog"
	"os"

	"interviewtimer/internal/core/model"
	"interviewtimer/internal/core/settings"

	"github.com/alecthomas/kong"
)

const (
	appName = "InterviewTimer"
	appID   = "com.interviewtimer.app"
)

// CLI holds the global flags and commands.
type CLI struct {
	Config   string `short:"c" help:"Startup defaults file (YAML)" type:"path"`
	Verbose  bool   `short:"v" help:"Enable verbose logging"`
	Mode     string `help:"Override the timer mode (countdown or stopwatch)"`
	Duration int    `short:"d" help:"Override the countdown length in minutes (1-120)"`

	GUI GUICmd `cmd:"" default:"1" help:"Open the desktop timer window (default)"`
	TUI TUICmd `cmd:"" help:"Run the timer in the terminal"`
}

// AfterApply runs after flag parsing and sets up logging.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// Validate rejects unknown override values.
func (c *CLI) Validate() error {
	if c.Mode != "" && !model.Mode(c.Mode).Valid() {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must be positive, got %d", c.Duration)
	}
	return nil
}

// applyOverrides layers command-line overrides on top of s.
func (c *CLI) applyOverrides(s settings.Settings) settings.Settings {
	if c.Mode != "" {
		s.Mode = model.Mode(c.Mode)
	}
	if c.Duration > 0 {
		s.DurationMinutes = settings.ClampDurationMinutes(c.Duration)
	}
	return s
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("interviewtimer"),
		kong.Description("Countdown and stopwatch timer for time-boxed interviews."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
