package raycast3d

import (
	"fmt"
	"image"
	"image/color"
)

// CanvasBackground is what a frame is flattened onto for display.
var CanvasBackground = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// PixelSink receives finished pixels.
type PixelSink interface {
	DrawPixel(x, y int, c Color)
}

// Frame is a rendered Width×Height grid of colors, row-major.
type Frame struct {
	Width  int
	Height int
	Pix    []Color
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

func (f *Frame) index(x, y int) int {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		panic(fmt.Sprintf("raycast3d: pixel (%d, %d) outside %dx%d frame", x, y, f.Width, f.Height))
	}
	return y*f.Width + x
}

func (f *Frame) Set(x, y int, c Color) {
	f.Pix[f.index(x, y)] = c
}

func (f *Frame) At(x, y int) Color {
	return f.Pix[f.index(x, y)]
}

// Blit sends every pixel to sink, row by row.
func (f *Frame) Blit(sink PixelSink) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			sink.DrawPixel(x, y, f.Pix[y*f.Width+x])
		}
	}
}

// Image flattens the frame over bg into an opaque image.
func (f *Frame) Image(bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	base := ColorFromStd(bg)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.Set(x, y, f.Pix[y*f.Width+x].Over(base))
		}
	}
	return img
}

// DrawPixel lets a Frame act as a sink for another frame.
func (f *Frame) DrawPixel(x, y int, c Color) {
	f.Set(x, y, c)
}
