// Package animator drives per-frame rendering of speech-activity visuals.
// It ticks at a fixed frame rate and, on every tick, pulls the latest sample
// window from each attached audio source and draws one frame on its surface.
package animator

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/realtime-ai/voicecanvas/pkg/render"
)

// Source supplies the latest time-domain samples for one audio stream.
// audio.SampleRing satisfies it.
type Source interface {
	// Samples returns up to n of the most recent samples.
	Samples(n int) []float32
}

// Feed binds an audio source to the surface its frames are drawn on.
type Feed struct {
	Source  Source
	Canvas  render.Canvas
	Speaker render.Speaker
}

// Config configures an Animator.
type Config struct {
	// FrameRate in frames per second.
	FrameRate int
	// Window is the number of recent samples summarized per frame.
	Window int
}

// DefaultConfig returns the default animator configuration.
func DefaultConfig() Config {
	return Config{
		FrameRate: 30,
		Window:    256,
	}
}

// Animator renders one frame per feed per tick. All drawing happens on the
// animator's own goroutine, so each surface sees complete frames only.
type Animator struct {
	cfg Config
	viz *render.Visualizer

	mu    sync.Mutex
	feeds []Feed

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an Animator rendering with viz. Zero-valued config fields fall
// back to the defaults from DefaultConfig.
func New(viz *render.Visualizer, cfg Config) *Animator {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultConfig().FrameRate
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultConfig().Window
	}
	return &Animator{
		cfg: cfg,
		viz: viz,
	}
}

// Attach registers a feed. Safe to call before or after Start.
func (a *Animator) Attach(f Feed) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.feeds = append(a.feeds, f)
}

// Start launches the tick loop. Stop (or canceling ctx) ends it.
func (a *Animator) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.wg.Add(1)
	go a.run(ctx)
	return nil
}

func (a *Animator) run(ctx context.Context) {
	defer a.wg.Done()

	interval := time.Second / time.Duration(a.cfg.FrameRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			a.step(now)
		}
	}
}

// step draws one frame per feed at the given timestamp.
func (a *Animator) step(at time.Time) {
	a.mu.Lock()
	feeds := make([]Feed, len(a.feeds))
	copy(feeds, a.feeds)
	a.mu.Unlock()

	for _, f := range feeds {
		buf := f.Source.Samples(a.cfg.Window)
		if len(buf) == 0 {
			// Nothing captured yet; keep the previous frame.
			continue
		}
		if err := a.viz.DrawAt(f.Canvas, buf, f.Speaker, at); err != nil {
			log.Printf("animator: draw %v frame: %v", f.Speaker, err)
		}
	}
}

// Stop ends the tick loop and waits for the in-flight frame to finish.
func (a *Animator) Stop() error {
	if a.cancel != nil {
		a.cancel()
		a.wg.Wait()
		a.cancel = nil
	}
	return nil
}
