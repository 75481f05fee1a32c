package raycast3d

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// TerrainOptions describes a Perlin heightfield. The grid lies in the XY
// plane starting at Origin, with heights added on Z.
type TerrainOptions struct {
	Cols      int // cells along X
	Rows      int // cells along Y
	CellSize  float64
	Amplitude float64
	Frequency float64 // noise samples per world unit
	Origin    Point3d

	Alpha float64
	Beta  float64
	N     int32
	Seed  int64

	Color Color
}

func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Cols:      8,
		Rows:      8,
		CellSize:  1,
		Amplitude: 1.2,
		Frequency: 0.35,
		Origin:    NewPoint3d(-4, 2, -2),
		Alpha:     2,
		Beta:      2,
		N:         3,
		Seed:      1,
		Color:     NewColor(90, 160, 80, 1),
	}
}

// TerrainDesc builds the heightfield as a scene description: two triangles
// per cell, one edge per grid line segment and a light above the middle.
func TerrainDesc(opts TerrainOptions) (*SceneDesc, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return nil, fmt.Errorf("terrain grid must be at least 1x1, got %dx%d", opts.Cols, opts.Rows)
	}
	if !(opts.CellSize > 0) {
		return nil, fmt.Errorf("terrain cell size must be positive, got %g", opts.CellSize)
	}

	noise := perlin.NewPerlin(opts.Alpha, opts.Beta, opts.N, opts.Seed)
	mesh := NewMesh()

	grid := make([][]int, opts.Rows+1)
	for j := 0; j <= opts.Rows; j++ {
		grid[j] = make([]int, opts.Cols+1)
		for i := 0; i <= opts.Cols; i++ {
			x := opts.Origin.X + float64(i)*opts.CellSize
			y := opts.Origin.Y + float64(j)*opts.CellSize
			h := noise.Noise2D(x*opts.Frequency, y*opts.Frequency) * opts.Amplitude
			grid[j][i] = mesh.AddPoint(NewPoint3d(x, y, opts.Origin.Z+h))
		}
	}

	d := NewSceneDesc()
	d.Vertices = mesh.Points
	for j := 0; j < opts.Rows; j++ {
		for i := 0; i < opts.Cols; i++ {
			a, b := grid[j][i], grid[j][i+1]
			c, e := grid[j+1][i+1], grid[j+1][i]
			d.AddFace(a, b, c, opts.Color, FACE_DIFFUSE)
			d.AddFace(a, c, e, opts.Color, FACE_DIFFUSE)
		}
	}
	for j := 0; j <= opts.Rows; j++ {
		for i := 0; i <= opts.Cols; i++ {
			if i < opts.Cols {
				d.AddEdge(grid[j][i], grid[j][i+1])
			}
			if j < opts.Rows {
				d.AddEdge(grid[j][i], grid[j+1][i])
			}
		}
	}

	centre := NewPoint3d(
		opts.Origin.X+float64(opts.Cols)*opts.CellSize/2,
		opts.Origin.Y+float64(opts.Rows)*opts.CellSize/2,
		opts.Origin.Z+opts.Amplitude+3,
	)
	d.AddLight(centre, 10, NewColor(255, 255, 255, 1))
	d.Camera.RX = -20
	d.Camera.Pos = NewPoint3d(centre.X, opts.Origin.Y-2, opts.Origin.Z+opts.Amplitude+2)
	return d, nil
}

// NewTerrainScene builds the heightfield scene and its suggested camera.
func NewTerrainScene(opts TerrainOptions) (*Scene, CameraConfig, error) {
	d, err := TerrainDesc(opts)
	if err != nil {
		return nil, CameraConfig{}, err
	}
	s, err := d.Build()
	if err != nil {
		return nil, CameraConfig{}, fmt.Errorf("building terrain: %w", err)
	}
	return s, d.Camera, nil
}
