package raycast3d

// Line is P(t) = Point + t*Dir.
type Line struct {
	Point Point3d
	Dir   Vector3
}

func NewLine(p Point3d, dir Vector3) Line {
	return Line{Point: p, Dir: dir}
}

func (l Line) At(t float64) Point3d {
	return l.Point.Move(l.Dir.Scale(t))
}

// Ray is a Line restricted to t >= 0. View rays and reflected rays are Rays.
type Ray struct {
	Line
}

func NewRay(origin Point3d, dir Vector3) Ray {
	return Ray{Line: NewLine(origin, dir)}
}

func (r Ray) Origin() Point3d {
	return r.Point
}

// InRange reports whether p, a point on the ray's line, is not behind the
// origin.
func (r Ray) InRange(p Point3d) bool {
	return r.Dir.Dot(VectorBetween(r.Point, p)) >= 0
}
