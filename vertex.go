package raycast3d

// Vertex is a scene point tagged with its index in the scene's vertex list.
type Vertex struct {
	Point Point3d
	Index int
}

func NewVertex(x, y, z float64, index int) Vertex {
	return Vertex{Point: NewPoint3d(x, y, z), Index: index}
}

// Move returns the vertex translated by v, keeping its index.
func (v Vertex) Move(vec Vector3) Vertex {
	return Vertex{Point: v.Point.Move(vec), Index: v.Index}
}
