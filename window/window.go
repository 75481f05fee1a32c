// Package window shows a World in a desktop window using ebiten.
package window

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/raycast3d"
)

var keyMap = map[ebiten.Key]string{
	ebiten.KeyA:          raycast3d.KeyLeft,
	ebiten.KeyD:          raycast3d.KeyRight,
	ebiten.KeyW:          raycast3d.KeyForward,
	ebiten.KeyS:          raycast3d.KeyBack,
	ebiten.KeySpace:      raycast3d.KeyUp,
	ebiten.KeyShift:      raycast3d.KeyDown,
	ebiten.KeyArrowLeft:  raycast3d.KeyYawLeft,
	ebiten.KeyArrowRight: raycast3d.KeyYawRight,
	ebiten.KeyArrowUp:    raycast3d.KeyPitchUp,
	ebiten.KeyArrowDown:  raycast3d.KeyPitchDown,
}

var segmentColor = color.RGBA{R: 255, G: 255, B: 255, A: 180}

const labelOffset = 3

// Game implements ebiten.Game. Every Update steps the world once.
type Game struct {
	world   *raycast3d.World
	canvas  *ebiten.Image
	sink    *pixelSink
	last    *raycast3d.FrameResult
	overlay bool
	width   int
	height  int
}

func NewGame(world *raycast3d.World) *Game {
	w, h := world.CanvasSize()
	return &Game{
		world:   world,
		canvas:  ebiten.NewImage(w, h),
		sink:    newPixelSink(w, h, raycast3d.CanvasBackground),
		overlay: true,
		width:   w,
		height:  h,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.overlay = !g.overlay
	}
	res, err := g.world.Step(context.Background(), keyState(ebiten.IsKeyPressed))
	if err != nil {
		return err
	}
	res.Frame.Blit(g.sink)
	g.canvas.WritePixels(g.sink.pix)
	g.last = res
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
	if g.last == nil {
		return
	}
	if g.overlay {
		drawOverlay(screen, g.last.Overlay)
	}
	cam := g.last.Camera
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  render: %v\npos %v  rx %.0f  rz %.0f",
		ebiten.ActualFPS(), g.last.Elapsed.Round(100*time.Microsecond), cam.Pos, cam.RX, cam.RZ))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and blocks until it is closed.
func Run(world *raycast3d.World, title string, zoom int) error {
	if zoom < 1 {
		zoom = 1
	}
	w, h := world.CanvasSize()
	ebiten.SetWindowSize(w*zoom, h*zoom)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(int(math.Max(1, math.Round(world.Camera().FPS))))

	log.Println("Starting window...")
	return ebiten.RunGame(NewGame(world))
}

// keyState snapshots the keys the camera understands.
func keyState(pressed func(ebiten.Key) bool) raycast3d.KeyState {
	keys := make(raycast3d.KeyState, len(keyMap))
	for k, name := range keyMap {
		if pressed(k) {
			keys[name] = true
		}
	}
	return keys
}

func drawOverlay(screen *ebiten.Image, o raycast3d.Overlay) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	const m = 8

	for _, s := range o.Segments {
		s, ok := s.ClipTo(-m, -m, w+m, h+m)
		if !ok {
			continue
		}
		vector.StrokeLine(screen, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), 1, segmentColor, true)
	}
	for _, l := range o.Lights {
		if l.Within(-m, -m, w+m, h+m) {
			vector.DrawFilledCircle(screen, float32(l.X), float32(l.Y), 4, l.Color.NRGBA(), true)
		}
	}
	for _, p := range o.Points {
		if p.Within(0, 0, w-1, h-1) {
			ebitenutil.DebugPrintAt(screen, fmt.Sprint(p.Index), int(p.X)+labelOffset, int(p.Y)-labelOffset-10)
		}
	}
}
