package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"interviewtimer/internal/audio"
	"interviewtimer/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

const tuiLogFile = "interviewtimer-tui.log"

var errNotTerminal = errors.New("tui requires an interactive terminal")

// TUICmd runs the terminal timer.
type TUICmd struct {
	Log string `help:"Write logs to this file while the terminal UI is active" type:"path"`
}

// Run starts the bubbletea program.
func (t *TUICmd) Run(cli *CLI) error {
	if !isInteractive() {
		return errNotTerminal
	}

	logFile, err := t.redirectLogs(cli.Verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logFile.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := bootstrap(ctx, cli, audio.NewBeepPlayer(nil))
	defer svc.Close()
	go svc.controller.Run(ctx)

	program := tea.NewProgram(terminal.New(svc.controller), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// redirectLogs keeps slog output away from the alternate screen.
func (t *TUICmd) redirectLogs(verbose bool) (*os.File, error) {
	path := t.Log
	if path == "" {
		path = filepath.Join(os.TempDir(), tuiLogFile)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})))
	return file, nil
}

func isInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
