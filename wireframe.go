package raycast3d

import "math"

// LabeledPoint is a projected vertex with its scene index.
type LabeledPoint struct {
	ScreenPoint
	Index int
}

type Segment struct {
	From ScreenPoint
	To   ScreenPoint
}

// LightMarker is a projected light, drawn in the light's color.
type LightMarker struct {
	ScreenPoint
	Color Color
}

// Overlay is the 2D wireframe drawn on top of a rendered frame.
type Overlay struct {
	Points   []LabeledPoint
	Segments []Segment
	Lights   []LightMarker
}

// Wireframe projects the scene's vertices, edges and lights. Anything behind
// the image plane is dropped; edges that cross it are clipped first.
func (c *Camera) Wireframe(scene *Scene) Overlay {
	var o Overlay

	for _, v := range scene.Vertices {
		sp, ok := c.ProjectToScreen(v.Point)
		if !ok {
			continue
		}
		o.Points = append(o.Points, LabeledPoint{ScreenPoint: sp, Index: v.Index})
	}

	for _, e := range scene.Edges {
		if !c.Plane.IsInFrontOf(e.V1.Point) && !c.Plane.IsInFrontOf(e.V2.Point) {
			continue
		}
		clipped := e.ClipToPlane(c.Plane)
		from, ok1 := c.ProjectToScreen(clipped.V1.Point)
		to, ok2 := c.ProjectToScreen(clipped.V2.Point)
		if !ok1 || !ok2 {
			continue
		}
		o.Segments = append(o.Segments, Segment{From: from, To: to})
	}

	for _, l := range scene.Lights {
		sp, ok := c.ProjectToScreen(l.Pos)
		if !ok {
			continue
		}
		o.Lights = append(o.Lights, LightMarker{ScreenPoint: sp, Color: l.Color})
	}
	return o
}

// ClipTo trims the segment to the rectangle [minX, maxX] × [minY, maxY]
// (Liang-Barsky). ok is false when no part of it is inside.
func (s Segment) ClipTo(minX, minY, maxX, maxY float64) (Segment, bool) {
	a, b := s.From, s.To
	if !isFinite(a.X) || !isFinite(a.Y) || !isFinite(b.X) || !isFinite(b.Y) {
		return Segment{}, false
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return Segment{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return Segment{}, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return Segment{}, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return Segment{
		From: ScreenPoint{X: a.X + t0*dx, Y: a.Y + t0*dy},
		To:   ScreenPoint{X: a.X + t1*dx, Y: a.Y + t1*dy},
	}, true
}

// Within reports whether p lies inside the rectangle.
func (p ScreenPoint) Within(minX, minY, maxX, maxY float64) bool {
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
