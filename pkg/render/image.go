package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// ImageCanvas is a Canvas backed by an in-memory RGBA image, rendered with
// fogleman/gg. Frames can be read back as an image.Image or written out as
// PNG files.
type ImageCanvas struct {
	dc *gg.Context
}

var _ Canvas = (*ImageCanvas)(nil)

// NewImageCanvas creates an image-backed canvas of the given pixel size.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{dc: gg.NewContext(width, height)}
}

func (ic *ImageCanvas) Size() (int, int) {
	return ic.dc.Width(), ic.dc.Height()
}

func (ic *ImageCanvas) Clear() {
	ic.dc.SetColor(color.Transparent)
	ic.dc.Clear()
}

func (ic *ImageCanvas) BeginPath() {
	ic.dc.ClearPath()
}

func (ic *ImageCanvas) MoveTo(x, y float64) {
	ic.dc.MoveTo(x, y)
}

func (ic *ImageCanvas) LineTo(x, y float64) {
	ic.dc.LineTo(x, y)
}

func (ic *ImageCanvas) ClosePath() {
	ic.dc.ClosePath()
}

func (ic *ImageCanvas) Fill(c color.Color) {
	ic.dc.SetColor(c)
	ic.dc.Fill()
}

// Image returns the current frame.
func (ic *ImageCanvas) Image() image.Image {
	return ic.dc.Image()
}

// SavePNG writes the current frame to path.
func (ic *ImageCanvas) SavePNG(path string) error {
	return ic.dc.SavePNG(path)
}
