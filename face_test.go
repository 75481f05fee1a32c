package raycast3d

import (
	"errors"
	"testing"
)

var opaqueRed = NewColor(255, 0, 0, 1)

func mustFace(t *testing.T, a, b, c Point3d, col Color, roughness int) Face {
	t.Helper()
	f, err := NewFace(Vertex{Point: a}, Vertex{Point: b, Index: 1}, Vertex{Point: c, Index: 2}, col, roughness)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	return f
}

func TestSolveBarycentric(t *testing.T) {
	testCases := []struct {
		name    string
		p, a, b Vector3
		s, t    float64
		ok      bool
	}{
		{
			name: "xy plane",
			p:    NewVector3(0.25, 0.5, 0),
			a:    NewVector3(1, 0, 0),
			b:    NewVector3(0, 1, 0),
			s:    0.25,
			t:    0.5,
			ok:   true,
		},
		{
			name: "x = const plane needs the yz pair",
			p:    NewVector3(0, 0.3, 0.6),
			a:    NewVector3(0, 1, 0),
			b:    NewVector3(0, 0, 1),
			s:    0.3,
			t:    0.6,
			ok:   true,
		},
		{
			name: "y = const plane needs the zx pair",
			p:    NewVector3(2, 0, 3),
			a:    NewVector3(1, 0, 0),
			b:    NewVector3(0, 0, 1),
			s:    2,
			t:    3,
			ok:   true,
		},
		{
			name: "skewed triangle",
			p:    NewVector3(1, 1, 1).Scale(0.2).Add(NewVector3(2, -1, 0.5).Scale(0.7)),
			a:    NewVector3(1, 1, 1),
			b:    NewVector3(2, -1, 0.5),
			s:    0.2,
			t:    0.7,
			ok:   true,
		},
		{
			name: "collinear edges",
			p:    NewVector3(1, 0, 0),
			a:    NewVector3(1, 0, 0),
			b:    NewVector3(2, 0, 0),
			ok:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, tt, ok := SolveBarycentric(tc.p, tc.a, tc.b)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if !almostEqual(s, tc.s) || !almostEqual(tt, tc.t) {
				t.Errorf("got s=%v t=%v, want s=%v t=%v", s, tt, tc.s, tc.t)
			}
		})
	}
}

func TestFaceContains(t *testing.T) {
	f := mustFace(t, NewPoint3d(0, 0, 0), NewPoint3d(1, 0, 0), NewPoint3d(0, 1, 0), opaqueRed, FACE_DIFFUSE)

	testCases := []struct {
		name string
		p    Point3d
		want bool
	}{
		{"inside", NewPoint3d(0.2, 0.2, 0), true},
		{"on hypotenuse", NewPoint3d(0.5, 0.5, 0), true},
		{"on vertex", NewPoint3d(1, 0, 0), true},
		{"on base", NewPoint3d(0.5, 0, 0), true},
		{"past hypotenuse", NewPoint3d(0.6, 0.6, 0), false},
		{"left of face", NewPoint3d(-0.1, 0.1, 0), false},
		{"below face", NewPoint3d(0.1, -0.1, 0), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestNewFace(t *testing.T) {
	f := mustFace(t, NewPoint3d(0, 0, 0), NewPoint3d(1, 0, 0), NewPoint3d(0, 1, 0), opaqueRed, FACE_MIRROR)
	if !vectorsAlmostEqual(f.Normal, NewVector3(0, 0, 1)) {
		t.Errorf("Normal = %v, want +z", f.Normal)
	}
	if !f.IsMirror() {
		t.Error("roughness 0 face is not a mirror")
	}

	testCases := []struct {
		name      string
		a, b, c   Point3d
		col       Color
		roughness int
		want      error
	}{
		{"collinear", NewPoint3d(0, 0, 0), NewPoint3d(1, 1, 1), NewPoint3d(2, 2, 2), opaqueRed, FACE_DIFFUSE, ErrDegenerateFace},
		{"repeated vertex", NewPoint3d(0, 0, 0), NewPoint3d(0, 0, 0), NewPoint3d(2, 2, 2), opaqueRed, FACE_DIFFUSE, ErrDegenerateFace},
		{"bad alpha", NewPoint3d(0, 0, 0), NewPoint3d(1, 0, 0), NewPoint3d(0, 1, 0), NewColor(0, 0, 0, 2), FACE_DIFFUSE, ErrInvalidColor},
		{"bad channel", NewPoint3d(0, 0, 0), NewPoint3d(1, 0, 0), NewPoint3d(0, 1, 0), NewColor(300, 0, 0, 1), FACE_DIFFUSE, ErrInvalidColor},
		{"bad roughness", NewPoint3d(0, 0, 0), NewPoint3d(1, 0, 0), NewPoint3d(0, 1, 0), opaqueRed, 2, ErrInvalidRoughness},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFace(Vertex{Point: tc.a}, Vertex{Point: tc.b}, Vertex{Point: tc.c}, tc.col, tc.roughness)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRayHitsSortedNearestFirst(t *testing.T) {
	far := mustFace(t, NewPoint3d(-5, 8, -5), NewPoint3d(5, 8, -5), NewPoint3d(0, 8, 5), opaqueRed, FACE_DIFFUSE)
	near := mustFace(t, NewPoint3d(-5, 4, -5), NewPoint3d(5, 4, -5), NewPoint3d(0, 4, 5), opaqueRed, FACE_DIFFUSE)
	behind := mustFace(t, NewPoint3d(-5, -4, -5), NewPoint3d(5, -4, -5), NewPoint3d(0, -4, 5), opaqueRed, FACE_DIFFUSE)
	aside := mustFace(t, NewPoint3d(10, 6, 0), NewPoint3d(11, 6, 0), NewPoint3d(10, 6, 1), opaqueRed, FACE_DIFFUSE)
	faces := []Face{far, behind, near, aside}

	hits := RayHits(NewRay(NewPoint3d(0, 0, 0), NewVector3(0, 1, 0)), faces)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if hits[0].Face != &faces[2] || hits[1].Face != &faces[0] {
		t.Errorf("hits out of order: %+v", hits)
	}
	if !almostEqual(hits[0].Distance, 4) || !almostEqual(hits[1].Distance, 8) {
		t.Errorf("distances %v, %v", hits[0].Distance, hits[1].Distance)
	}
	if !pointsAlmostEqual(hits[0].Point, NewPoint3d(0, 4, 0)) {
		t.Errorf("hit point %v", hits[0].Point)
	}
}

func TestEdgeHitsStayWithinSegment(t *testing.T) {
	wall := mustFace(t, NewPoint3d(-5, 4, -5), NewPoint3d(5, 4, -5), NewPoint3d(0, 4, 5), opaqueRed, FACE_DIFFUSE)
	faces := []Face{wall}

	if hits := EdgeHits(NewSegment(NewPoint3d(0, 0, 0), NewPoint3d(0, 8, 0)), faces); len(hits) != 1 {
		t.Errorf("crossing segment: %d hits, want 1", len(hits))
	}
	if hits := EdgeHits(NewSegment(NewPoint3d(0, 0, 0), NewPoint3d(0, 3, 0)), faces); len(hits) != 0 {
		t.Errorf("short segment: %d hits, want 0", len(hits))
	}
	if hits := EdgeHits(NewSegment(NewPoint3d(0, 5, 0), NewPoint3d(0, 9, 0)), faces); len(hits) != 0 {
		t.Errorf("segment past the wall: %d hits, want 0", len(hits))
	}
}
