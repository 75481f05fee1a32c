package raycast3d

import "math"

// Bounds is an axis-aligned box used to reject intersections cheaply.
type Bounds struct {
	Min Point3d
	Max Point3d
}

func NewBounds(points ...Point3d) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

func (b Bounds) Contains(p Point3d) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X &&
		b.Min.Y <= p.Y && p.Y <= b.Max.Y &&
		b.Min.Z <= p.Z && p.Z <= b.Max.Z
}

func (b Bounds) Overlaps(other Bounds) bool {
	return b.Min.X <= other.Max.X && other.Min.X <= b.Max.X &&
		b.Min.Y <= other.Max.Y && other.Min.Y <= b.Max.Y &&
		b.Min.Z <= other.Max.Z && other.Min.Z <= b.Max.Z
}

// Behind reports whether a ray leaving origin along dir has already passed
// the box on some axis and so can never enter it.
func (b Bounds) Behind(origin Point3d, dir Vector3) bool {
	return passed(origin.X, dir.X, b.Min.X, b.Max.X) ||
		passed(origin.Y, dir.Y, b.Min.Y, b.Max.Y) ||
		passed(origin.Z, dir.Z, b.Min.Z, b.Max.Z)
}

func passed(o, d, lo, hi float64) bool {
	switch {
	case d > 0:
		return o > hi
	case d < 0:
		return o < lo
	default:
		return o < lo || o > hi
	}
}
