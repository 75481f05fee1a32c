package raycast3d

// Mesh is a list of unique points. Adding a point that is already present
// returns its existing index.
type Mesh struct {
	Points     []Point3d
	pointIndex map[[3]float64]int
}

func NewMesh() *Mesh {
	return &Mesh{
		pointIndex: make(map[[3]float64]int),
	}
}

// AddPoint uses the map for an average O(1) lookup.
func (m *Mesh) AddPoint(p Point3d) int {
	key := [3]float64{p.X, p.Y, p.Z}
	if index, found := m.pointIndex[key]; found {
		return index
	}
	m.Points = append(m.Points, p)
	index := len(m.Points) - 1
	m.pointIndex[key] = index
	return index
}

func (m *Mesh) Len() int {
	return len(m.Points)
}
