package raycast3d

// clipNudge keeps a clipped endpoint strictly in front of the camera plane.
const clipNudge = 0.0001

type Edge struct {
	V1, V2 Vertex
	Vector Vector3
	Line   Line
	Bounds Bounds
}

func NewEdge(v1, v2 Vertex) Edge {
	vec := VectorBetween(v1.Point, v2.Point)
	return Edge{
		V1:     v1,
		V2:     v2,
		Vector: vec,
		Line:   NewLine(v1.Point, vec),
		Bounds: NewBounds(v1.Point, v2.Point),
	}
}

// NewSegment builds an index-less edge between two points, used for shadow
// rays toward a light.
func NewSegment(p1, p2 Point3d) Edge {
	return NewEdge(Vertex{Point: p1, Index: -1}, Vertex{Point: p2, Index: -1})
}

func (e Edge) Length() float64 {
	return e.Vector.Length()
}

// InRange reports whether p, a point on the edge's line, lies between the two
// endpoints.
func (e Edge) InRange(p Point3d) bool {
	return e.Vector.Dot(VectorBetween(e.V1.Point, p)) >= 0 &&
		e.Vector.Dot(VectorBetween(p, e.V2.Point)) >= 0
}

// IntersectPlane returns the point where the edge crosses plane.
func (e Edge) IntersectPlane(plane Plane) (Point3d, bool) {
	pt, ok := e.Line.IntersectPlane(plane)
	if !ok || !e.InRange(pt) {
		return Point3d{}, false
	}
	return pt, true
}

// ClipToPlane returns a copy of the edge whose endpoint behind plane has been
// moved onto it, then nudged toward the front endpoint. Edges with both
// endpoints on the same side come back unchanged. A point on the plane counts
// as in front.
func (e Edge) ClipToPlane(plane Plane) Edge {
	behind1 := !plane.IsInFrontOf(e.V1.Point)
	behind2 := !plane.IsInFrontOf(e.V2.Point)
	if behind1 == behind2 {
		return e
	}
	pt, ok := e.IntersectPlane(plane)
	if !ok {
		return e
	}
	v1, v2 := e.V1, e.V2
	if behind2 {
		v2 = Vertex{Point: pt.Move(e.Vector.WithLength(-clipNudge)), Index: e.V2.Index}
	} else {
		v1 = Vertex{Point: pt.Move(e.Vector.WithLength(clipNudge)), Index: e.V1.Index}
	}
	return NewEdge(v1, v2)
}
