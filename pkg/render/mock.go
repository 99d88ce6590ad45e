package render

import (
	"image/color"
	"sync"
)

// CanvasOp names one recorded drawing operation.
type CanvasOp string

const (
	OpClear     CanvasOp = "clear"
	OpBeginPath CanvasOp = "begin"
	OpMoveTo    CanvasOp = "move"
	OpLineTo    CanvasOp = "line"
	OpClosePath CanvasOp = "close"
	OpFill      CanvasOp = "fill"
)

// RecordingCanvas is a Canvas that records every operation for verification
// in tests.
type RecordingCanvas struct {
	W, H int

	// Ops records the operations in call order.
	Ops []CanvasOp
	// Vertices records the points passed to MoveTo and LineTo, in order.
	Vertices [][2]float64
	// Fills records the colors passed to Fill.
	Fills []color.Color

	mu sync.Mutex
}

var _ Canvas = (*RecordingCanvas)(nil)

// NewRecordingCanvas creates a recording canvas reporting the given size.
func NewRecordingCanvas(width, height int) *RecordingCanvas {
	return &RecordingCanvas{W: width, H: height}
}

func (rc *RecordingCanvas) Size() (int, int) {
	return rc.W, rc.H
}

func (rc *RecordingCanvas) Clear() {
	rc.record(OpClear)
}

func (rc *RecordingCanvas) BeginPath() {
	rc.record(OpBeginPath)
}

func (rc *RecordingCanvas) MoveTo(x, y float64) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Ops = append(rc.Ops, OpMoveTo)
	rc.Vertices = append(rc.Vertices, [2]float64{x, y})
}

func (rc *RecordingCanvas) LineTo(x, y float64) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Ops = append(rc.Ops, OpLineTo)
	rc.Vertices = append(rc.Vertices, [2]float64{x, y})
}

func (rc *RecordingCanvas) ClosePath() {
	rc.record(OpClosePath)
}

func (rc *RecordingCanvas) Fill(c color.Color) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Ops = append(rc.Ops, OpFill)
	rc.Fills = append(rc.Fills, c)
}

func (rc *RecordingCanvas) record(op CanvasOp) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Ops = append(rc.Ops, op)
}

// CountOp returns how many times op was recorded.
func (rc *RecordingCanvas) CountOp(op CanvasOp) int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	n := 0
	for _, o := range rc.Ops {
		if o == op {
			n++
		}
	}
	return n
}

// Reset clears all recorded state.
func (rc *RecordingCanvas) Reset() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Ops = nil
	rc.Vertices = nil
	rc.Fills = nil
}
