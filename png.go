package raycast3d

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	segmentWidth     = 1.2
	lightMarkerSize  = 4
	vertexMarkerSize = 1.5
	overlayMargin    = 8
)

var (
	segmentColor = color.NRGBA{R: 255, G: 255, B: 255, A: 180}
	labelColor   = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
)

// WritePNG encodes the frame, flattened over CanvasBackground, with the
// overlay on top when withOverlay is set.
func WritePNG(w io.Writer, res *FrameResult, withOverlay bool) error {
	img := res.Frame.Image(CanvasBackground)
	if withOverlay {
		DrawOverlay(img, res.Overlay)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func WritePNGFile(fileName string, res *FrameResult, withOverlay bool) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", fileName, err)
	}
	if err := WritePNG(file, res, withOverlay); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// DrawOverlay draws edges as thin anti-aliased lines, lights as diamonds in
// their own color, and vertex indices as text.
func DrawOverlay(dst draw.Image, o Overlay) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	const m = overlayMargin

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	for _, s := range o.Segments {
		if s, ok := s.ClipTo(-m, -m, w+m, h+m); ok {
			strokeSegment(z, s.From, s.To, segmentWidth)
		}
	}
	for _, p := range o.Points {
		if p.Within(-m, -m, w+m, h+m) {
			diamond(z, p.ScreenPoint, vertexMarkerSize)
		}
	}
	z.Draw(dst, b, image.NewUniform(segmentColor), b.Min)

	for _, l := range o.Lights {
		if !l.Within(-m, -m, w+m, h+m) {
			continue
		}
		z.Reset(b.Dx(), b.Dy())
		z.DrawOp = draw.Over
		diamond(z, l.ScreenPoint, lightMarkerSize)
		z.Draw(dst, b, image.NewUniform(l.Color.NRGBA()), b.Min)
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
	}
	for _, p := range o.Points {
		if !p.Within(0, 0, w-1, h-1) {
			continue
		}
		d.Dot = fixed.P(b.Min.X+int(p.X)+3, b.Min.Y+int(p.Y)-3)
		d.DrawString(strconv.Itoa(p.Index))
	}
}

// strokeSegment adds the segment as a width-wide quad.
func strokeSegment(z *vector.Rasterizer, from, to ScreenPoint, width float64) {
	dx, dy := to.X-from.X, to.Y-from.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	px, py := -dy/l*width/2, dx/l*width/2
	z.MoveTo(float32(from.X+px), float32(from.Y+py))
	z.LineTo(float32(to.X+px), float32(to.Y+py))
	z.LineTo(float32(to.X-px), float32(to.Y-py))
	z.LineTo(float32(from.X-px), float32(from.Y-py))
	z.ClosePath()
}

func diamond(z *vector.Rasterizer, p ScreenPoint, r float64) {
	z.MoveTo(float32(p.X), float32(p.Y-r))
	z.LineTo(float32(p.X+r), float32(p.Y))
	z.LineTo(float32(p.X), float32(p.Y+r))
	z.LineTo(float32(p.X-r), float32(p.Y))
	z.ClosePath()
}
