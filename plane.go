package raycast3d

// Plane is A*x + B*y + C*z + D = 0. (A, B, C) is the normal.
type Plane struct {
	A, B, C, D float64
}

// NewPlaneFromNormal builds the plane with the given normal passing through
// point.
func NewPlaneFromNormal(normal Vector3, point Point3d) Plane {
	p := Plane{
		A: normal.X,
		B: normal.Y,
		C: normal.Z,
	}
	p.D = -(p.A*point.X + p.B*point.Y + p.C*point.Z)
	return p
}

func (p Plane) Normal() Vector3 {
	return Vector3{X: p.A, Y: p.B, Z: p.C}
}

// Substitute evaluates the plane equation at pt. Zero means pt is on the plane.
func (p Plane) Substitute(pt Point3d) float64 {
	return p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D
}

// IsInFrontOf reports whether pt is on the normal side of the plane or on it.
func (p Plane) IsInFrontOf(pt Point3d) bool {
	return p.Substitute(pt) >= 0
}

// IntersectLinePlane returns the point where line meets plane. A line
// parallel to the plane gives non-finite coordinates; check IsFinite.
func IntersectLinePlane(line Line, plane Plane) Point3d {
	denom := plane.A*line.Dir.X + plane.B*line.Dir.Y + plane.C*line.Dir.Z
	t := -plane.Substitute(line.Point) / denom
	return line.At(t)
}

// IntersectPlane is IntersectLinePlane with the parallel case folded into ok.
func (l Line) IntersectPlane(plane Plane) (Point3d, bool) {
	pt := IntersectLinePlane(l, plane)
	if !pt.IsFinite() {
		return Point3d{}, false
	}
	return pt, true
}
