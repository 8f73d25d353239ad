package main

import (
	"context"
	"errors"
	"log/slog"

	"interviewtimer/internal/audio"
	"interviewtimer/internal/core/settings"
	"interviewtimer/internal/core/timekeeper"
	"interviewtimer/internal/platform"
	"interviewtimer/internal/ui/display"
	"interviewtimer/internal/ui/preferences"
	"interviewtimer/internal/ui/tray"
	"interviewtimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// GUICmd opens the desktop timer.
type GUICmd struct{}

// Run starts the Fyne application.
func (g *GUICmd) Run(cli *CLI) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		slog.Info("timer already running, bringing it to front")
		return platform.ActivateRunning(appName)
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := bootstrap(ctx, cli, audio.NewBeepPlayer(nil))
	defer svc.Close()
	store := svc.store
	controller := svc.controller

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.AppIcon())

	var prefsWindow *preferences.Window
	openPreferences := func() {
		prefsWindow.UpdateSettings(store.Current(), store.Sounds())
		prefsWindow.Show()
	}
	displayWindow := display.New(fyneApp, appearanceOf(store.Current()), display.Callbacks{
		OnToggle:   controller.Toggle,
		OnReset:    controller.Reset,
		OnSettings: openPreferences,
	})

	prefsWindow = preferences.New(fyneApp, store.Current(), store.Sounds(), preferences.Callbacks{
		OnSave: func(updated settings.Settings) {
			store.Apply(updated)
		},
		OnTestSound: controller.TestSound,
	})

	store.OnChange(func(updated settings.Settings) {
		fyne.Do(func() {
			displayWindow.SetAppearance(appearanceOf(updated))
		})
	})

	trayManager := tray.New(nil, tray.Callbacks{})
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        displayWindow.Show,
			OnToggle:      controller.Toggle,
			OnReset:       controller.Reset,
			OnPreferences: openPreferences,
			OnQuit:        fyneApp.Quit,
		})
		trayManager.SetStatus(controller.Snapshot().Display)
		desktopApp.SetSystemTrayIcon(resources.AppIcon())
		displayWindow.Window().SetCloseIntercept(displayWindow.Window().Hide)
	} else {
		slog.Debug("system tray unsupported on this platform")
		displayWindow.Window().SetMaster()
	}

	guard.SetOnActivate(func() {
		fyne.Do(displayWindow.Show)
	})

	events := controller.Subscribe(16)
	go func() {
		for event := range events {
			fyne.Do(func() {
				displayWindow.Render(event.State, event.Display)
				trayManager.SetStatus(event.Display)
				trayManager.SetRunning(event.State == timekeeper.StateRunning)
			})
		}
	}()
	go controller.Run(ctx)

	snapshot := controller.Snapshot()
	displayWindow.Render(snapshot.State, snapshot.Display)
	displayWindow.Show()
	fyneApp.Run()
	return nil
}

func appearanceOf(s settings.Settings) display.Appearance {
	return display.Appearance{
		BackgroundColor: s.BackgroundColor,
		TextColor:       s.TextColor,
		Mode:            s.Mode,
	}
}
