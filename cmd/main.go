// Offline demo: renders a few seconds of the speech blob animation from a
// synthetic voice-like waveform into a PNG frame sequence.
//
// Usage:
//
//	go run cmd/main.go
//	ls frames/
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/realtime-ai/voicecanvas/pkg/render"
)

const (
	frameRate = 30
	seconds   = 3
	width     = 320
	height    = 320
)

func main() {
	outDir := "frames"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	viz := render.New(render.DefaultConfig())
	canvas := render.NewImageCanvas(width, height)

	start := time.Now()
	for frame := 0; frame < frameRate*seconds; frame++ {
		at := start.Add(time.Duration(frame) * time.Second / frameRate)
		buf := syntheticVoice(256, float64(frame)/frameRate)

		if err := viz.DrawAt(canvas, buf, render.SpeakerAI, at); err != nil {
			log.Fatalf("draw frame %d: %v", frame, err)
		}

		path := filepath.Join(outDir, fmt.Sprintf("frame_%03d.png", frame))
		if err := canvas.SavePNG(path); err != nil {
			log.Fatalf("save frame %d: %v", frame, err)
		}
	}

	log.Printf("wrote %d frames to %s", frameRate*seconds, outDir)
}

// syntheticVoice produces a buffer resembling voiced audio: a 220Hz tone with
// a slow loudness envelope, so the blob pulses as if someone were talking.
func syntheticVoice(n int, t float64) []float32 {
	buf := make([]float32, n)
	envelope := 0.2 + 0.8*math.Abs(math.Sin(2*math.Pi*0.4*t))
	for i := range buf {
		ts := t + float64(i)/16000
		buf[i] = float32(envelope * math.Sin(2*math.Pi*220*ts))
	}
	return buf
}
