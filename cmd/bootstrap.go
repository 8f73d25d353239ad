package main

import (
	"context"
	"log/slog"

	"interviewtimer/internal/audio"
	"interviewtimer/internal/control"
	"interviewtimer/internal/core/settings"
	"interviewtimer/internal/core/timekeeper"
	"interviewtimer/internal/platform"
	"interviewtimer/internal/storage"
)

// services bundles the components shared by both shells.
type services struct {
	store      *settings.Store
	notifier   *audio.Notifier
	controller *control.Controller
}

func bootstrap(ctx context.Context, cli *CLI, player audio.Player) *services {
	configPath := resolveConfigPath(cli.Config)

	defaults := storage.Defaults{Settings: settings.DefaultSettings()}
	if configPath != "" {
		loaded, err := storage.LoadDefaults(configPath)
		if err != nil {
			slog.Warn("load config, using defaults", "path", configPath, "error", err)
		} else {
			defaults = loaded
		}
	}

	store := settings.NewStore(cli.applyOverrides(defaults.Settings), defaults.Sounds)
	keeper := timekeeper.New(store.Current().TimerConfig(), timekeeper.Config{})
	notifier := audio.NewNotifier(player, audio.Config{})
	controller := control.New(store, keeper, notifier)

	if configPath != "" {
		err := storage.Watch(ctx, configPath, 0, func(reloaded storage.Defaults) {
			store.AddSounds(reloaded.Sounds)
			store.Apply(cli.applyOverrides(reloaded.Settings))
		})
		if err != nil {
			slog.Debug("config watch disabled", "path", configPath, "error", err)
		}
	}

	slog.Debug("timer ready", "config", configPath, "mode", store.Current().Mode, "duration_minutes", store.Current().DurationMinutes)
	return &services{
		store:      store,
		notifier:   notifier,
		controller: controller,
	}
}

func resolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	configDir, err := platform.ConfigDir()
	if err != nil {
		slog.Debug("no config directory", "error", err)
		return ""
	}
	return storage.DefaultPath(configDir, appName)
}

func (svc *services) Close() {
	svc.controller.Close()
	svc.notifier.Close()
}
