package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"interviewtimer/internal/core/model"
	"interviewtimer/internal/core/settings"
	"interviewtimer/internal/core/timekeeper"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mutePlayer struct{}

func (mutePlayer) Play(context.Context, string) error { return nil }

func parse(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("interviewtimer"), kong.Exit(func(int) {}))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	return &cli, kctx, err
}

func TestDefaultCommandIsGUI(t *testing.T) {
	_, kctx, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "gui", kctx.Command())
}

func TestTUICommandWithOverrides(t *testing.T) {
	cli, kctx, err := parse(t, "--mode", "stopwatch", "-d", "45", "--verbose", "tui")
	require.NoError(t, err)
	assert.Equal(t, "tui", kctx.Command())
	assert.True(t, cli.Verbose)

	s := cli.applyOverrides(settings.DefaultSettings())
	assert.Equal(t, model.ModeStopwatch, s.Mode)
	assert.Equal(t, 45, s.DurationMinutes)
}

func TestUnknownModeRejected(t *testing.T) {
	_, _, err := parse(t, "--mode", "hourglass")
	assert.Error(t, err)
}

func TestOverridesClampDuration(t *testing.T) {
	cli := &CLI{Duration: 500}
	assert.Equal(t, model.MaxDurationMinutes, cli.applyOverrides(settings.DefaultSettings()).DurationMinutes)

	cli = &CLI{}
	assert.Equal(t, settings.DefaultSettings(), cli.applyOverrides(settings.DefaultSettings()))
}

func TestBootstrapReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: countdown\nduration_minutes: 10\nbeep_interval_seconds: 15\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := bootstrap(ctx, &CLI{Config: path, Duration: 5}, mutePlayer{})
	defer svc.Close()

	current := svc.store.Current()
	assert.Equal(t, 5, current.DurationMinutes, "flag wins over file")
	assert.Equal(t, 15, current.BeepInterval)

	snapshot := svc.controller.Snapshot()
	assert.Equal(t, timekeeper.StateIdle, snapshot.State)
	assert.Equal(t, "05:00", snapshot.Display)
}

func TestBootstrapBrokenConfigUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [broken"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := bootstrap(ctx, &CLI{Config: path}, mutePlayer{})
	defer svc.Close()

	assert.Equal(t, settings.DefaultSettings(), svc.store.Current())
}
