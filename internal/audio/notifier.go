package audio

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Config controls notifier sequencing.
type Config struct {
	// CompletionRepeats is how many times the completion sound plays.
	CompletionRepeats int
	RepeatPause       time.Duration
	// PlayTimeout bounds a single playback including the download.
	PlayTimeout time.Duration
	Clock       clockwork.Clock
}

// Notifier plays sounds without ever blocking or failing its caller.
type Notifier struct {
	player  Player
	options Config

	mu               sync.Mutex
	ctx              context.Context
	cancel           context.CancelFunc
	completionCancel context.CancelFunc
	wg               sync.WaitGroup
}

// NewNotifier creates a notifier backed by player.
func NewNotifier(player Player, options Config) *Notifier {
	if options.CompletionRepeats <= 0 {
		options.CompletionRepeats = 3
	}
	if options.RepeatPause <= 0 {
		options.RepeatPause = time.Second
	}
	if options.PlayTimeout <= 0 {
		options.PlayTimeout = 20 * time.Second
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Notifier{
		player:  player,
		options: options,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Notify plays url once in the background.
func (notifier *Notifier) Notify(url string) {
	if url == "" {
		return
	}
	notifier.wg.Add(1)
	go func() {
		defer notifier.wg.Done()
		if err := notifier.play(notifier.ctx, url); err != nil {
			slog.Warn("play sound", "url", url, "error", err)
		}
	}()
}

// NotifyCompletion plays url up to CompletionRepeats times with a pause in
// between. A failed playback ends the sequence. Starting a new sequence
// cancels the previous one.
func (notifier *Notifier) NotifyCompletion(url string) {
	if url == "" {
		return
	}
	notifier.mu.Lock()
	if notifier.completionCancel != nil {
		notifier.completionCancel()
	}
	ctx, cancel := context.WithCancel(notifier.ctx)
	notifier.completionCancel = cancel
	notifier.mu.Unlock()

	notifier.wg.Add(1)
	go func() {
		defer notifier.wg.Done()
		defer cancel()
		notifier.repeat(ctx, url)
	}()
}

// Close cancels pending sequences and waits for playback goroutines.
func (notifier *Notifier) Close() {
	notifier.cancel()
	notifier.wg.Wait()
}

func (notifier *Notifier) repeat(ctx context.Context, url string) {
	for attempt := 1; attempt <= notifier.options.CompletionRepeats; attempt++ {
		if attempt > 1 && !sleepWithContext(ctx, notifier.options.Clock, notifier.options.RepeatPause) {
			return
		}
		if err := notifier.play(ctx, url); err != nil {
			if ctx.Err() == nil {
				slog.Warn("completion sound stopped", "url", url, "attempt", attempt, "error", err)
			}
			return
		}
	}
}

func (notifier *Notifier) play(ctx context.Context, url string) error {
	playCtx, cancel := context.WithTimeout(ctx, notifier.options.PlayTimeout)
	defer cancel()
	return notifier.player.Play(playCtx, url)
}

func sleepWithContext(ctx context.Context, clock clockwork.Clock, duration time.Duration) bool {
	timer := clock.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}
