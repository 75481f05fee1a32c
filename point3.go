package raycast3d

import (
	"encoding/json"
	"fmt"
	"math"
)

type Point3d struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3d(x, y, z float64) Point3d {
	return Point3d{
		X: x,
		Y: y,
		Z: z,
	}
}

// Move returns the point translated by v.
func (p Point3d) Move(v Vector3) Point3d {
	return Point3d{
		X: p.X + v.X,
		Y: p.Y + v.Y,
		Z: p.Z + v.Z,
	}
}

// DistanceTo
func (p Point3d) DistanceTo(other Point3d) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// IsFinite reports whether no coordinate is NaN or infinite. Intersections
// with a parallel plane come back non-finite.
func (p Point3d) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p Point3d) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Points are written as [x, y, z] in scene files.
func (p Point3d) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

func (p *Point3d) UnmarshalJSON(data []byte) error {
	var xyz []float64
	if err := json.Unmarshal(data, &xyz); err != nil {
		return fmt.Errorf("point must be [x, y, z]: %w", err)
	}
	if len(xyz) != 3 {
		return fmt.Errorf("point must be [x, y, z], got %d values", len(xyz))
	}
	p.X, p.Y, p.Z = xyz[0], xyz[1], xyz[2]
	return nil
}
