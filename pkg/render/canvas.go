package render

import "image/color"

// Canvas is the 2D drawing surface a visual frame is painted on. A caller
// owns the surface exclusively for the duration of one draw call.
//
// Implementations build one path at a time: BeginPath resets the current
// path, MoveTo/LineTo append segments, ClosePath closes it, and Fill paints
// it with a solid color.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (width, height int)
	// Clear erases the whole drawable area.
	Clear()
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Fill paints the current path with a solid color.
	Fill(c color.Color)
}

// Speaker tags whose audio a frame represents.
type Speaker int

const (
	// SpeakerAI marks frames driven by the assistant's playback audio.
	SpeakerAI Speaker = iota
	// SpeakerUser marks frames driven by the local microphone.
	SpeakerUser
)

func (s Speaker) String() string {
	switch s {
	case SpeakerAI:
		return "ai"
	case SpeakerUser:
		return "user"
	default:
		return "unknown"
	}
}
