package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

const (
	speakerSampleRate = beep.SampleRate(44100)
	resampleQuality   = 4
	maxSoundBytes     = 8 << 20
)

// Player plays a sound resource and blocks until playback ends.
type Player interface {
	Play(ctx context.Context, url string) error
}

// BeepPlayer downloads mp3 resources, decodes them once and plays them
// through the system speaker.
type BeepPlayer struct {
	client   *http.Client
	initOnce sync.Once
	initErr  error
	cache    sync.Map
}

// NewBeepPlayer creates a player using client for downloads.
func NewBeepPlayer(client *http.Client) *BeepPlayer {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &BeepPlayer{client: client}
}

// Play plays url once. Cancelling ctx silences the sound.
func (player *BeepPlayer) Play(ctx context.Context, url string) error {
	if err := player.initSpeaker(); err != nil {
		return err
	}
	buffer, err := player.load(ctx, url)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	ctrl := &beep.Ctrl{Streamer: buffer.Streamer(0, buffer.Len())}
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
		return ctx.Err()
	}
}

func (player *BeepPlayer) initSpeaker() error {
	player.initOnce.Do(func() {
		if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(time.Second/10)); err != nil {
			player.initErr = fmt.Errorf("init speaker: %w", err)
		}
	})
	return player.initErr
}

func (player *BeepPlayer) load(ctx context.Context, url string) (*beep.Buffer, error) {
	if cached, ok := player.cache.Load(url); ok {
		return cached.(*beep.Buffer), nil
	}

	data, err := player.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", url, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, speakerSampleRate, streamer)
	}
	format.SampleRate = speakerSampleRate

	buffer := beep.NewBuffer(format)
	buffer.Append(source)
	player.cache.Store(url, buffer)
	return buffer, nil
}

func (player *BeepPlayer) fetch(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build sound request: %w", err)
	}
	response, err := player.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetch sound %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sound %s: unexpected status %s", url, response.Status)
	}
	data, err := io.ReadAll(io.LimitReader(response.Body, maxSoundBytes))
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", url, err)
	}
	return data, nil
}
