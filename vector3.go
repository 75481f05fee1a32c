package raycast3d

import "math"

// Vector3 is a displacement or direction. All methods return new values.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{
		X: x,
		Y: y,
		Z: z,
	}
}

// VectorBetween returns the vector from p1 to p2.
func VectorBetween(p1, p2 Point3d) Vector3 {
	return Vector3{
		X: p2.X - p1.X,
		Y: p2.Y - p1.Y,
		Z: p2.Z - p1.Z,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) Scale(rate float64) Vector3 {
	return Vector3{
		X: v.X * rate,
		Y: v.Y * rate,
		Z: v.Z * rate,
	}
}

// WithLength rescales v to the given length. A negative length flips the
// direction. The zero vector stays zero.
func (v Vector3) WithLength(length float64) Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(length / l)
}

func (v Vector3) Normalize() Vector3 {
	return v.WithLength(1)
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot computes the dot product of two vectors.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product v × other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Rotate turns v by rx degrees about the X axis and then by rz degrees about
// the Z axis. Positive rz turns +Y toward +X.
func (v Vector3) Rotate(rx, rz float64) Vector3 {
	return RotateVector3(RotationXZ(rx, rz), v)
}

// SumVectors adds all vectors together.
func SumVectors(vectors ...Vector3) Vector3 {
	var sum Vector3
	for _, v := range vectors {
		sum = sum.Add(v)
	}
	return sum
}
