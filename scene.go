package raycast3d

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"os"
)

// lightOnFaceTolerance is how close to a face's plane a light may sit before
// it counts as lying on the face.
const lightOnFaceTolerance = 1e-9

// Scene is validated geometry. Edges and faces hold copies of their vertices,
// so a Scene has no internal pointers and Clone is a flat copy.
type Scene struct {
	Vertices []Vertex
	Edges    []Edge
	Faces    []Face
	Lights   []Light
}

// Clone returns a copy whose slices can be changed without touching s.
func (s *Scene) Clone() *Scene {
	return &Scene{
		Vertices: append([]Vertex(nil), s.Vertices...),
		Edges:    append([]Edge(nil), s.Edges...),
		Faces:    append([]Face(nil), s.Faces...),
		Lights:   append([]Light(nil), s.Lights...),
	}
}

type FaceDesc struct {
	V         [3]int     `json:"v"`
	Color     [4]float64 `json:"color"`
	Roughness *int       `json:"roughness,omitempty"` // defaults to diffuse
}

type LightDesc struct {
	Pos   Point3d    `json:"pos"`
	Power float64    `json:"power"`
	Color [3]float64 `json:"color"`
}

// SceneDesc is the on-disk form of a scene. Vertices are referenced by their
// position in the Vertices slice.
type SceneDesc struct {
	Vertices []Point3d    `json:"vertices"`
	Edges    [][2]int     `json:"edges"`
	Faces    []FaceDesc   `json:"faces"`
	Lights   []LightDesc  `json:"lights"`
	Camera   CameraConfig `json:"camera"`
}

// NewSceneDesc returns an empty description with the default camera.
func NewSceneDesc() *SceneDesc {
	return &SceneDesc{Camera: DefaultCameraConfig()}
}

func (d *SceneDesc) AddVertex(p Point3d) int {
	d.Vertices = append(d.Vertices, p)
	return len(d.Vertices) - 1
}

func (d *SceneDesc) AddEdge(i, j int) {
	d.Edges = append(d.Edges, [2]int{i, j})
}

func (d *SceneDesc) AddFace(i, j, k int, col Color, roughness int) {
	r := roughness
	d.Faces = append(d.Faces, FaceDesc{
		V:         [3]int{i, j, k},
		Color:     [4]float64{col.R, col.G, col.B, col.A},
		Roughness: &r,
	})
}

// AddQuad adds the four corners a, b, c, e (in order around the rim) as two
// triangles plus their outline.
func (d *SceneDesc) AddQuad(a, b, c, e Point3d, col Color, roughness int) {
	ia, ib, ic, ie := d.AddVertex(a), d.AddVertex(b), d.AddVertex(c), d.AddVertex(e)
	d.AddFace(ia, ib, ic, col, roughness)
	d.AddFace(ia, ic, ie, col, roughness)
	d.AddEdge(ia, ib)
	d.AddEdge(ib, ic)
	d.AddEdge(ic, ie)
	d.AddEdge(ie, ia)
}

func (d *SceneDesc) AddLight(pos Point3d, power float64, col Color) {
	d.Lights = append(d.Lights, LightDesc{Pos: pos, Power: power, Color: [3]float64{col.R, col.G, col.B}})
}

// Build validates the description and produces a Scene.
func (d *SceneDesc) Build() (*Scene, error) {
	s := &Scene{
		Vertices: make([]Vertex, len(d.Vertices)),
		Edges:    make([]Edge, 0, len(d.Edges)),
		Faces:    make([]Face, 0, len(d.Faces)),
		Lights:   make([]Light, 0, len(d.Lights)),
	}
	for i, p := range d.Vertices {
		if !p.IsFinite() {
			return nil, fmt.Errorf("vertex %d: coordinates %v are not finite", i, p)
		}
		s.Vertices[i] = Vertex{Point: p, Index: i}
	}

	vertex := func(i int) (Vertex, error) {
		if i < 0 || i >= len(s.Vertices) {
			return Vertex{}, fmt.Errorf("%w: %d (have %d)", ErrVertexIndex, i, len(s.Vertices))
		}
		return s.Vertices[i], nil
	}

	for n, e := range d.Edges {
		v1, err := vertex(e[0])
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", n, err)
		}
		v2, err := vertex(e[1])
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", n, err)
		}
		s.Edges = append(s.Edges, NewEdge(v1, v2))
	}

	for n, f := range d.Faces {
		var vs [3]Vertex
		for k, idx := range f.V {
			v, err := vertex(idx)
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", n, err)
			}
			vs[k] = v
		}
		roughness := FACE_DIFFUSE
		if f.Roughness != nil {
			roughness = *f.Roughness
		}
		col := NewColor(f.Color[0], f.Color[1], f.Color[2], f.Color[3])
		face, err := NewFace(vs[0], vs[1], vs[2], col, roughness)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", n, err)
		}
		s.Faces = append(s.Faces, face)
	}

	for n, l := range d.Lights {
		if !l.Pos.IsFinite() {
			return nil, fmt.Errorf("light %d: %w: position %v", n, ErrInvalidLight, l.Pos)
		}
		light, err := NewLight(l.Pos, l.Power, NewColor(l.Color[0], l.Color[1], l.Color[2], 1))
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", n, err)
		}
		for i := range s.Faces {
			f := &s.Faces[i]
			if math.Abs(f.Plane.Substitute(light.Pos)) < lightOnFaceTolerance && f.Contains(light.Pos) {
				return nil, fmt.Errorf("light %d: %w %d", n, ErrLightOnFace, i)
			}
		}
		s.Lights = append(s.Lights, light)
	}

	log.Printf("Scene: %d vertices, %d edges, %d faces, %d lights",
		len(s.Vertices), len(s.Edges), len(s.Faces), len(s.Lights))
	return s, nil
}

// DecodeScene reads a JSON scene description. Camera fields missing from the
// file keep their defaults.
func DecodeScene(r io.Reader) (*SceneDesc, error) {
	d := NewSceneDesc()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return d, nil
}

// LoadScene decodes and builds a scene, returning it with the camera block.
func LoadScene(r io.Reader) (*Scene, CameraConfig, error) {
	d, err := DecodeScene(r)
	if err != nil {
		return nil, CameraConfig{}, err
	}
	s, err := d.Build()
	if err != nil {
		return nil, CameraConfig{}, err
	}
	return s, d.Camera, nil
}

func LoadSceneFile(fileName string) (*Scene, CameraConfig, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, CameraConfig{}, fmt.Errorf("could not open scene file %s: %w", fileName, err)
	}
	defer file.Close()

	s, cfg, err := LoadScene(file)
	if err != nil {
		return nil, CameraConfig{}, fmt.Errorf("error loading scene file %s: %w", fileName, err)
	}
	return s, cfg, nil
}

// WriteScene encodes d as indented JSON.
func WriteScene(w io.Writer, d *SceneDesc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
