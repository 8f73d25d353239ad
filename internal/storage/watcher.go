package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

// Watch reloads the config file at path whenever it changes and passes the
// result to onReload until ctx is cancelled. Reload errors are logged and the
// previous configuration stays in effect.
func Watch(ctx context.Context, path string, debounce time.Duration, onReload func(Defaults)) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create config watcher: %w", err)
	}
	// Watch the directory so editors that replace the file are still seen.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch config directory: %w", err)
	}

	go watchLoop(ctx, watcher, absPath, debounce, onReload)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, debounce time.Duration, onReload func(Defaults)) {
	defer func() { _ = watcher.Close() }()

	var reload *time.Timer
	defer func() {
		if reload != nil {
			reload.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if reload != nil {
				reload.Stop()
			}
			reload = time.AfterFunc(debounce, func() {
				defaults, err := LoadDefaults(path)
				if err != nil {
					slog.Warn("reload config", "path", path, "error", err)
					return
				}
				slog.Info("config reloaded", "path", path)
				onReload(defaults)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher", "error", err)
		}
	}
}
