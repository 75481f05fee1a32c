package raycast3d

import "fmt"

const (
	FACE_MIRROR  = 0
	FACE_DIFFUSE = 1
)

// containsSlack absorbs rounding on shared triangle edges so that adjacent
// faces leave no pinholes between them.
const containsSlack = 1e-9

// Face is a triangle. Vector1 and Vector2 run from V1 to V2 and V3; the unit
// normal is Vector1 × Vector2.
type Face struct {
	V1, V2, V3 Vertex
	Color      Color
	Roughness  int
	Vector1    Vector3
	Vector2    Vector3
	Normal     Vector3
	Plane      Plane
	Bounds     Bounds
}

func NewFace(v1, v2, v3 Vertex, col Color, roughness int) (Face, error) {
	if err := col.Validate(); err != nil {
		return Face{}, err
	}
	if roughness != FACE_MIRROR && roughness != FACE_DIFFUSE {
		return Face{}, fmt.Errorf("%w: got %d", ErrInvalidRoughness, roughness)
	}
	f := Face{
		V1:        v1,
		V2:        v2,
		V3:        v3,
		Color:     col,
		Roughness: roughness,
		Vector1:   VectorBetween(v1.Point, v2.Point),
		Vector2:   VectorBetween(v1.Point, v3.Point),
		Bounds:    NewBounds(v1.Point, v2.Point, v3.Point),
	}
	normal := f.Vector1.Cross(f.Vector2)
	if normal.Length() == 0 || !isFinite(normal.Length()) {
		return Face{}, fmt.Errorf("%w: vertices %d, %d, %d", ErrDegenerateFace, v1.Index, v2.Index, v3.Index)
	}
	f.Normal = normal.Normalize()
	f.Plane = NewPlaneFromNormal(f.Normal, v1.Point)
	return f, nil
}

func (f Face) IsMirror() bool {
	return f.Roughness == FACE_MIRROR
}

// Contains reports whether p lies inside the triangle or on its border. p is
// assumed to already be on the face's plane.
func (f Face) Contains(p Point3d) bool {
	s, t, ok := SolveBarycentric(VectorBetween(f.V1.Point, p), f.Vector1, f.Vector2)
	if !ok {
		return false
	}
	return s >= -containsSlack && t >= -containsSlack && s+t <= 1+containsSlack
}
