// Package render draws the animated speech-activity blob for a voice-chat
// interface: one closed, filled shape per frame whose boundary ripples with
// a traveling wave and whose deformation scales with the loudness of the
// audio being visualized.
package render

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/realtime-ai/voicecanvas/pkg/wave"
)

// idleSquish keeps the blob visibly breathing even over silence.
const idleSquish = 0.2

// Config configures a Visualizer.
type Config struct {
	// Points is the number of boundary points around the blob, and the
	// length of the amplitude summary computed per frame.
	Points int
	// BaseRadius is the resting radius as a fraction of the smaller surface
	// dimension.
	BaseRadius float64
	// Squish is the maximum radial deformation in pixels at full amplitude.
	Squish float64
	// WaveHz is the temporal frequency of the traveling wave.
	WaveHz float64
	// Lobes is the spatial frequency of the traveling wave around the circle.
	Lobes float64
	// AIColor and UserColor are the fill colors per speaker tag.
	AIColor   color.Color
	UserColor color.Color
	// CacheSize bounds the visualizer's summary cache.
	CacheSize int
}

// DefaultConfig returns the default visualizer configuration.
func DefaultConfig() Config {
	return Config{
		Points:     10,
		BaseRadius: 0.3,
		Squish:     12,
		WaveHz:     1.5,
		Lobes:      3,
		AIColor:    color.RGBA{R: 0x2e, G: 0x7c, B: 0xf6, A: 0xff},
		UserColor:  color.RGBA{R: 0x2f, G: 0xb3, B: 0x6c, A: 0xff},
		CacheSize:  wave.DefaultCacheSize,
	}
}

// Visualizer paints animated speech-activity frames. It owns the normalizer
// (and thus the summary cache) it uses, and carries no state across frames:
// a frame is a pure function of (buffer, speaker, timestamp).
type Visualizer struct {
	cfg  Config
	norm *wave.Normalizer
}

// New creates a Visualizer. Zero-valued config fields fall back to the
// defaults from DefaultConfig.
func New(cfg Config) *Visualizer {
	def := DefaultConfig()
	if cfg.Points <= 0 {
		cfg.Points = def.Points
	}
	if cfg.BaseRadius <= 0 {
		cfg.BaseRadius = def.BaseRadius
	}
	if cfg.Squish <= 0 {
		cfg.Squish = def.Squish
	}
	if cfg.WaveHz <= 0 {
		cfg.WaveHz = def.WaveHz
	}
	if cfg.Lobes <= 0 {
		cfg.Lobes = def.Lobes
	}
	if cfg.AIColor == nil {
		cfg.AIColor = def.AIColor
	}
	if cfg.UserColor == nil {
		cfg.UserColor = def.UserColor
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = def.CacheSize
	}

	return &Visualizer{
		cfg:  cfg,
		norm: wave.NewNormalizer(cfg.CacheSize),
	}
}

// Draw renders one frame for the current wall-clock time. See DrawAt.
func (v *Visualizer) Draw(c Canvas, buffer []float32, who Speaker) error {
	return v.DrawAt(c, buffer, who, time.Now())
}

// DrawAt clears the surface and paints one closed, filled blob for the given
// timestamp. The boundary walks Points+1 evenly spaced angular steps; each
// step is displaced from the base radius by a traveling sinusoid of
// (timestamp, angle) whose amplitude scales with the peak summary value for
// that angle, so louder audio deforms the blob harder. The fill color follows
// the speaker tag. The surface is fully repainted before returning.
//
// Returns an error (without touching the surface) when the buffer cannot be
// summarized, i.e. when it is empty.
func (v *Visualizer) DrawAt(c Canvas, buffer []float32, who Speaker, at time.Time) error {
	summary, err := v.norm.Normalize(buffer, v.cfg.Points, wave.ModePeak, true)
	if err != nil {
		return fmt.Errorf("summarize buffer: %w", err)
	}

	w, h := c.Size()
	cx := float64(w) / 2
	cy := float64(h) / 2
	base := v.cfg.BaseRadius * math.Min(float64(w), float64(h))

	secs := float64(at.UnixNano()) / float64(time.Second)
	phase := 2 * math.Pi * v.cfg.WaveHz * secs

	c.Clear()
	c.BeginPath()
	for i := 0; i <= v.cfg.Points; i++ {
		angle := 2 * math.Pi * float64(i) / float64(v.cfg.Points)
		// The closing step (i == Points) revisits the start angle and reuses
		// summary[0], keeping the boundary continuous. Upsampled summaries
		// carry signed samples, so take the magnitude.
		loudness := math.Abs(float64(summary[i%v.cfg.Points]))
		amp := v.cfg.Squish * (idleSquish + loudness)
		r := base + amp*math.Sin(phase+v.cfg.Lobes*angle)

		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	c.Fill(v.fillColor(who))
	return nil
}

func (v *Visualizer) fillColor(who Speaker) color.Color {
	if who == SpeakerUser {
		return v.cfg.UserColor
	}
	return v.cfg.AIColor
}
