package raycast3d

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// PLYOptions controls how a PLY mesh is placed in a scene.
type PLYOptions struct {
	Scale   float64 // 0 means 1
	Offset  Vector3
	Reverse bool // flip winding, and so the face normals
	Mirror  bool
	Alpha   float64 // 0 means opaque
}

var plyDefaultColor = NewColor(128, 128, 128, 1)

func LoadPLYFile(fileName string, opts PLYOptions) (*SceneDesc, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	d, err := LoadPLY(file, opts)
	if err != nil {
		return nil, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return d, nil
}

// plyElement is one "element" block of a PLY header with its properties in
// declaration order.
type plyElement struct {
	name  string
	count int
	props []plyProperty
}

type plyProperty struct {
	name string
	list bool
}

func (e *plyElement) has(name string) bool {
	for _, p := range e.props {
		if p.name == name {
			return true
		}
	}
	return false
}

// plyRow is one data line decoded against its element's properties.
type plyRow struct {
	values map[string]float64
	list   []string
}

// parseRow splits a data line by the element's properties. Scalar values are
// keyed by property name; the first list property fills list.
func (e *plyElement) parseRow(line string) (plyRow, error) {
	fields := strings.Fields(line)
	row := plyRow{values: make(map[string]float64, len(e.props))}
	k := 0
	for _, p := range e.props {
		if k >= len(fields) {
			return plyRow{}, fmt.Errorf("missing %s", p.name)
		}
		if p.list {
			n, err := strconv.Atoi(fields[k])
			if err != nil || n < 0 || k+1+n > len(fields) {
				return plyRow{}, fmt.Errorf("bad %s list %q", p.name, fields[k])
			}
			if row.list == nil {
				row.list = fields[k+1 : k+1+n]
			}
			k += 1 + n
			continue
		}
		v, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return plyRow{}, fmt.Errorf("bad %s: %w", p.name, err)
		}
		row.values[p.name] = v
		k++
	}
	if k != len(fields) {
		return plyRow{}, fmt.Errorf("%d values, header declares %d", len(fields), k)
	}
	return row, nil
}

// rgb returns the row's color channels, under either the plain or the
// diffuse_ property names.
func (r plyRow) rgb() (Color, bool) {
	for _, prefix := range []string{"", "diffuse_"} {
		red, ok1 := r.values[prefix+"red"]
		green, ok2 := r.values[prefix+"green"]
		blue, ok3 := r.values[prefix+"blue"]
		if ok1 && ok2 && ok3 {
			return NewColor(red, green, blue, 1), true
		}
	}
	return Color{}, false
}

func hasColor(e *plyElement) bool {
	return (e.has("red") && e.has("green") && e.has("blue")) ||
		(e.has("diffuse_red") && e.has("diffuse_green") && e.has("diffuse_blue"))
}

// LoadPLY reads an ASCII PLY mesh. Polygons are split into triangle fans and
// every distinct polygon side becomes an edge. Faces take the face color if
// the file has one, else the average of their vertex colors, else gray.
// Properties are matched by name, so their order and any extra properties
// (normals, texture coordinates) do not matter.
func LoadPLY(reader io.Reader, opts PLYOptions) (*SceneDesc, error) {
	scanner := bufio.NewScanner(reader)

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = 1
	}
	roughness := FACE_DIFFUSE
	if opts.Mirror {
		roughness = FACE_MIRROR
	}

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return nil, fmt.Errorf("missing ply magic")
	}

	var elements []*plyElement
	var current *plyElement

header:
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) > 1 && parts[1] != "ascii" {
				return nil, fmt.Errorf("unsupported PLY format %q", parts[1])
			}
		case "element":
			if len(parts) != 3 {
				return nil, fmt.Errorf("bad element line %q", scanner.Text())
			}
			n, err := strconv.Atoi(parts[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("bad element count %q", parts[2])
			}
			current = &plyElement{name: parts[1], count: n}
			elements = append(elements, current)
		case "property":
			if current == nil || len(parts) < 3 {
				return nil, fmt.Errorf("property outside an element: %q", scanner.Text())
			}
			list := parts[1] == "list"
			if list && len(parts) < 5 {
				return nil, fmt.Errorf("bad list property %q", scanner.Text())
			}
			current.props = append(current.props, plyProperty{name: parts[len(parts)-1], list: list})
		case "end_header":
			break header
		}
	}

	d := NewSceneDesc()
	mesh := NewMesh()
	// PLY indices may point at duplicate positions; remap them through mesh.
	var remap []int
	var vertexColors []Color
	var vertexCount int
	var withVertexColor bool

	seen := make(map[[2]int]bool)
	addEdge := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		if a == b || seen[[2]int{a, b}] {
			return
		}
		seen[[2]int{a, b}] = true
		d.AddEdge(a, b)
	}

	for _, el := range elements {
		switch el.name {
		case "vertex":
			if !el.has("x") || !el.has("y") || !el.has("z") {
				return nil, fmt.Errorf("vertex element lacks x, y or z")
			}
			vertexCount = el.count
			withVertexColor = hasColor(el)
			for i := 0; i < el.count; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected end of file while reading vertices")
				}
				row, err := el.parseRow(scanner.Text())
				if err != nil {
					return nil, fmt.Errorf("vertex %d: %w", i, err)
				}
				v := row.values
				p := NewPoint3d(v["x"]*scale, v["y"]*scale, v["z"]*scale).Move(opts.Offset)
				remap = append(remap, mesh.AddPoint(p))

				col := plyDefaultColor
				if withVertexColor {
					col, _ = row.rgb()
				}
				vertexColors = append(vertexColors, col)
			}

		case "face":
			withColor := hasColor(el)
			for i := 0; i < el.count; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected end of file while reading faces")
				}
				row, err := el.parseRow(scanner.Text())
				if err != nil {
					return nil, fmt.Errorf("face %d: %w", i, err)
				}
				if len(row.list) < 3 {
					return nil, fmt.Errorf("face %d: %d corners, need at least 3", i, len(row.list))
				}

				idx := make([]int, len(row.list))
				var r, g, b float64
				for j, field := range row.list {
					n, err := strconv.Atoi(field)
					if err != nil || n < 0 || n >= len(remap) {
						return nil, fmt.Errorf("face %d: %w: %s", i, ErrVertexIndex, field)
					}
					idx[j] = remap[n]
					r += vertexColors[n].R
					g += vertexColors[n].G
					b += vertexColors[n].B
				}
				if opts.Reverse {
					for l, h := 0, len(idx)-1; l < h; l, h = l+1, h-1 {
						idx[l], idx[h] = idx[h], idx[l]
					}
				}

				faceColor := plyDefaultColor
				switch {
				case withColor:
					faceColor, _ = row.rgb()
				case withVertexColor:
					n := float64(len(idx))
					faceColor = NewColor(r/n, g/n, b/n, 1)
				}
				faceColor.A = alpha

				for j := 1; j+1 < len(idx); j++ {
					d.AddFace(idx[0], idx[j], idx[j+1], faceColor, roughness)
				}
				for j := range idx {
					addEdge(idx[j], idx[(j+1)%len(idx)])
				}
			}

		default:
			for i := 0; i < el.count; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected end of file while reading %s", el.name)
				}
			}
		}
	}
	d.Vertices = mesh.Points

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}

	log.Printf("PLY: %d points (%d listed), %d faces, %d edges", mesh.Len(), vertexCount, len(d.Faces), len(d.Edges))
	return d, nil
}
