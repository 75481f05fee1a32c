package raycast3d

// AddBox adds an axis-aligned box spanning lo to hi. Pass bottom=false for a
// box resting on a floor so its underside is not coplanar with it.
func (d *SceneDesc) AddBox(lo, hi Point3d, col Color, roughness int, bottom bool) {
	base := len(d.Vertices)
	for i := 0; i < 8; i++ {
		p := lo
		if i&1 != 0 {
			p.X = hi.X
		}
		if i&2 != 0 {
			p.Y = hi.Y
		}
		if i&4 != 0 {
			p.Z = hi.Z
		}
		d.AddVertex(p)
	}

	quads := [][4]int{
		{4, 5, 7, 6}, // top
		{0, 1, 5, 4}, // front
		{2, 6, 7, 3}, // back
		{0, 4, 6, 2}, // left
		{1, 3, 7, 5}, // right
	}
	if bottom {
		quads = append(quads, [4]int{0, 2, 3, 1})
	}
	for _, q := range quads {
		d.AddFace(base+q[0], base+q[1], base+q[2], col, roughness)
		d.AddFace(base+q[0], base+q[2], base+q[3], col, roughness)
	}

	edges := [][2]int{
		{0, 1}, {1, 3}, {3, 2}, {2, 0},
		{4, 5}, {5, 7}, {7, 6}, {6, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		d.AddEdge(base+e[0], base+e[1])
	}
}

// DemoSceneDesc is a small room: a floor, a red box, a mirror, a blue glass
// pane and two lights.
func DemoSceneDesc() *SceneDesc {
	d := NewSceneDesc()
	d.Camera.Pos = NewPoint3d(0, 0, 0.5)
	d.Camera.RX = -5

	d.AddQuad(
		NewPoint3d(-4, 2, -1),
		NewPoint3d(4, 2, -1),
		NewPoint3d(4, 12, -1),
		NewPoint3d(-4, 12, -1),
		NewColor(180, 180, 180, 1), FACE_DIFFUSE,
	)
	d.AddBox(NewPoint3d(-2, 6, -1), NewPoint3d(-0.5, 7.5, 0.5), NewColor(200, 60, 60, 1), FACE_DIFFUSE, false)
	d.AddQuad(
		NewPoint3d(0.5, 11, -0.5),
		NewPoint3d(3.5, 11, -0.5),
		NewPoint3d(3.5, 11, 2),
		NewPoint3d(0.5, 11, 2),
		NewColor(255, 255, 255, 1), FACE_MIRROR,
	)
	d.AddQuad(
		NewPoint3d(0.5, 4, -1),
		NewPoint3d(2, 4, -1),
		NewPoint3d(2, 4, 0.5),
		NewPoint3d(0.5, 4, 0.5),
		NewColor(60, 120, 255, 0.4), FACE_DIFFUSE,
	)

	d.AddLight(NewPoint3d(-1, 3, 3), 8, NewColor(255, 240, 200, 1))
	d.AddLight(NewPoint3d(3, 6, 2.5), 6, NewColor(200, 220, 255, 1))
	return d
}

// DemoScene builds DemoSceneDesc. The description is fixed, so an error here
// is a bug.
func DemoScene() (*Scene, CameraConfig) {
	d := DemoSceneDesc()
	s, err := d.Build()
	if err != nil {
		panic(err)
	}
	return s, d.Camera
}
