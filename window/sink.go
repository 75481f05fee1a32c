package window

import (
	"image/color"

	"github.com/smasonuk/raycast3d"
)

// pixelSink flattens frame pixels onto a solid background into an RGBA byte
// buffer ready for WritePixels.
type pixelSink struct {
	pix    []byte
	width  int
	height int
	bg     raycast3d.Color
}

func newPixelSink(width, height int, bg color.Color) *pixelSink {
	return &pixelSink{
		pix:    make([]byte, 4*width*height),
		width:  width,
		height: height,
		bg:     raycast3d.ColorFromStd(bg),
	}
}

func (s *pixelSink) DrawPixel(x, y int, c raycast3d.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	n := c.Over(s.bg).NRGBA()
	i := 4 * (y*s.width + x)
	s.pix[i] = n.R
	s.pix[i+1] = n.G
	s.pix[i+2] = n.B
	s.pix[i+3] = n.A
}
