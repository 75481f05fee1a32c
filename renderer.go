package raycast3d

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// surfaceNudge lifts a hit point off its face before casting secondary rays,
// so they do not hit the face they start on.
const surfaceNudge = 1e-4

// Renderer casts one ray per pixel. Workers is the number of rows rendered
// at once; 1 or less renders on the calling goroutine.
type Renderer struct {
	Workers    int
	Background Color
}

// NewRenderer returns a renderer with the given worker count. Zero or less
// means one worker per CPU.
func NewRenderer(workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{
		Workers:    workers,
		Background: Background,
	}
}

// Render draws scene as seen by cam. scene and cam must not change until it
// returns. The only error is ctx's.
func (r *Renderer) Render(ctx context.Context, scene *Scene, cam *Camera) (*Frame, error) {
	view := *cam
	t := &tracer{
		faces:  scene.Faces,
		lights: scene.Lights,
		limit:  view.ReflectionLimit,
		bg:     r.Background,
	}
	frame := NewFrame(view.CanvasWidth, view.CanvasHeight)

	row := func(y int) {
		for x := 0; x < frame.Width; x++ {
			frame.Pix[y*frame.Width+x] = t.Trace(view.ViewRay(float64(x), float64(y)), 0)
		}
	}

	if r.Workers <= 1 {
		for y := 0; y < frame.Height; y++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			row(y)
		}
		return frame, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)
	for y := 0; y < frame.Height; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row(y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return frame, nil
}

// tracer holds everything a single ray needs. It is read-only once built.
type tracer struct {
	faces  []Face
	lights []Light
	limit  int
	bg     Color
}

// Trace returns the color seen along ray. depth counts the mirror bounces
// already taken.
func (t *tracer) Trace(ray Ray, depth int) Color {
	hits := RayHits(ray, t.faces)
	for i, h := range hits {
		if h.Face.Color.IsOpaque() {
			hits = hits[:i+1]
			break
		}
	}

	col := t.bg
	if n := len(hits); n > 0 && hits[n-1].Face.Color.IsOpaque() {
		hit := hits[n-1]
		hits = hits[:n-1]

		normal := hit.Face.Normal
		if normal.Dot(VectorBetween(hit.Point, ray.Origin())) < 0 {
			normal = normal.Neg()
		}
		p := hit.Point.Move(normal.Scale(surfaceNudge))

		if hit.Face.IsMirror() {
			if depth+1 > t.limit {
				return t.bg
			}
			d := ray.Dir
			reflected := d.Add(normal.Scale(-2 * d.Dot(normal)))
			col = t.Trace(NewRay(p, reflected), depth+1).Over(t.bg)
		} else {
			col = hit.Face.Color.Over(t.bg).Scale(t.brightnessAt(p))
		}
	}

	for i := len(hits) - 1; i >= 0; i-- {
		col = hits[i].Face.Color.Over(col)
	}
	return col
}

// brightnessAt sums the light reaching p, dimmed by every face in the way.
func (t *tracer) brightnessAt(p Point3d) float64 {
	total := 0.0
	for _, light := range t.lights {
		transmittance := 1.0
		for _, h := range EdgeHits(NewSegment(p, light.Pos), t.faces) {
			transmittance *= 1 - h.Face.Color.A
		}
		total += transmittance * light.BrightnessAt(p)
	}
	if total > 1 {
		return 1
	}
	if total < 0 {
		return 0
	}
	return total
}
