package settings

import (
	"log/slog"
	"sync"
)

// Store holds the validated settings of the running session and notifies
// listeners on every accepted change.
type Store struct {
	mu        sync.Mutex
	current   Settings
	sounds    []Sound
	listeners []func(Settings)
}

// NewStore creates a store seeded with initial. Extra sounds are appended to
// the built-in catalog; entries with an already known URL are skipped.
func NewStore(initial Settings, extraSounds []Sound) *Store {
	store := &Store{
		current: DefaultSettings(),
		sounds:  mergeSounds(DefaultSounds, extraSounds),
	}
	store.current = store.normalizeLocked(initial)
	return store
}

// Current returns the active settings.
func (store *Store) Current() Settings {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.current
}

// Sounds returns the sound catalog.
func (store *Store) Sounds() []Sound {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]Sound(nil), store.sounds...)
}

// SoundName returns the catalog name for url, or url itself.
func (store *Store) SoundName(url string) string {
	for _, sound := range store.Sounds() {
		if sound.URL == url {
			return sound.Name
		}
	}
	return url
}

// OnChange registers a listener called after each Apply.
func (store *Store) OnChange(listener func(Settings)) {
	store.mu.Lock()
	store.listeners = append(store.listeners, listener)
	store.mu.Unlock()
}

// AddSounds extends the catalog.
func (store *Store) AddSounds(sounds []Sound) {
	store.mu.Lock()
	store.sounds = mergeSounds(store.sounds, sounds)
	store.mu.Unlock()
}

// Apply validates updated, stores it and notifies listeners. The accepted
// settings are returned.
func (store *Store) Apply(updated Settings) Settings {
	store.mu.Lock()
	accepted := store.normalizeLocked(updated)
	store.current = accepted
	listeners := append(([]func(Settings))(nil), store.listeners...)
	store.mu.Unlock()

	for _, listener := range listeners {
		listener(accepted)
	}
	return accepted
}

// Update applies a modification of the current settings.
func (store *Store) Update(modify func(*Settings)) Settings {
	updated := store.Current()
	modify(&updated)
	return store.Apply(updated)
}

// normalizeLocked coerces invalid fields; enumerated fields fall back to
// the current value.
func (store *Store) normalizeLocked(updated Settings) Settings {
	previous := store.current
	if !updated.Mode.Valid() {
		slog.Debug("ignoring unknown timer mode", "mode", updated.Mode)
		updated.Mode = previous.Mode
	}
	updated.DurationMinutes = ClampDurationMinutes(updated.DurationMinutes)
	if !ValidBeepInterval(updated.BeepInterval) {
		slog.Debug("ignoring unknown beep interval", "seconds", updated.BeepInterval)
		updated.BeepInterval = previous.BeepInterval
	}
	if !store.knownSoundLocked(updated.SoundURL) {
		slog.Debug("ignoring unknown sound", "url", updated.SoundURL)
		updated.SoundURL = previous.SoundURL
	}
	return updated
}

func (store *Store) knownSoundLocked(url string) bool {
	for _, sound := range store.sounds {
		if sound.URL == url {
			return true
		}
	}
	return false
}

func mergeSounds(base, extra []Sound) []Sound {
	merged := append([]Sound(nil), base...)
	for _, sound := range extra {
		if sound.URL == "" {
			continue
		}
		duplicate := false
		for _, existing := range merged {
			if existing.URL == sound.URL {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		if sound.Name == "" {
			sound.Name = sound.URL
		}
		merged = append(merged, sound)
	}
	return merged
}
