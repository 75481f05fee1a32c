package raycast3d

import (
	"fmt"
	"image/color"
	"math"
)

// Color has straight (non-premultiplied) R, G, B in [0, 255] and alpha in
// [0, 1].
type Color struct {
	R, G, B, A float64
}

// Background is what a ray that hits nothing sees.
var Background = Color{R: 0, G: 0, B: 0, A: 0.1}

func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) IsOpaque() bool {
	return c.A >= 1
}

// Over composites c on top of dst.
func (c Color) Over(dst Color) Color {
	if c.A == 0 {
		return dst
	}
	a := c.A + dst.A*(1-c.A)
	if a == 0 {
		return Color{}
	}
	under := dst.A * (1 - c.A)
	return Color{
		R: (c.R*c.A + dst.R*under) / a,
		G: (c.G*c.A + dst.G*under) / a,
		B: (c.B*c.A + dst.B*under) / a,
		A: a,
	}
}

// Scale multiplies the RGB channels by rate and leaves alpha alone.
func (c Color) Scale(rate float64) Color {
	return Color{R: c.R * rate, G: c.G * rate, B: c.B * rate, A: c.A}
}

func (c Color) Validate() error {
	for _, ch := range []float64{c.R, c.G, c.B} {
		if !isFinite(ch) || ch < 0 || ch > 255 {
			return fmt.Errorf("%w: rgb channel %g not in [0,255]", ErrInvalidColor, ch)
		}
	}
	if !isFinite(c.A) || c.A < 0 || c.A > 1 {
		return fmt.Errorf("%w: alpha %g not in [0,1]", ErrInvalidColor, c.A)
	}
	return nil
}

// NRGBA rounds and clamps to 8-bit channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A * 255),
	}
}

func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func to8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// ColorFromStd converts any color.Color to a Color.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: float64(n.R), G: float64(n.G), B: float64(n.B), A: float64(n.A) / 255}
}
