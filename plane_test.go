package raycast3d

import (
	"math"
	"testing"
)

func TestPlaneSide(t *testing.T) {
	plane := NewPlaneFromNormal(NewVector3(0, 0, 1), NewPoint3d(0, 0, 2))
	if !almostEqual(plane.D, -2) {
		t.Fatalf("D = %v, want -2", plane.D)
	}

	testCases := []struct {
		name string
		p    Point3d
		want bool
	}{
		{"above", NewPoint3d(0, 0, 3), true},
		{"below", NewPoint3d(0, 0, 1), false},
		{"on plane counts as in front", NewPoint3d(5, -5, 2), true},
		{"far off axis", NewPoint3d(100, 100, 2.001), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.IsInFrontOf(tc.p); got != tc.want {
				t.Errorf("IsInFrontOf(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestIntersectLinePlane(t *testing.T) {
	plane := NewPlaneFromNormal(NewVector3(0, 0, 1), NewPoint3d(0, 0, 2))

	line := NewLine(NewPoint3d(1, 1, 0), NewVector3(0, 0, 1))
	got := IntersectLinePlane(line, plane)
	if !pointsAlmostEqual(got, NewPoint3d(1, 1, 2)) {
		t.Errorf("IntersectLinePlane = %v, want (1, 1, 2)", got)
	}

	slanted := NewLine(NewPoint3d(0, 0, 0), NewVector3(1, 2, 4))
	got, ok := slanted.IntersectPlane(plane)
	if !ok || !pointsAlmostEqual(got, NewPoint3d(0.5, 1, 2)) {
		t.Errorf("IntersectPlane = %v, %v, want (0.5, 1, 2)", got, ok)
	}

	parallel := NewLine(NewPoint3d(1, 1, 0), NewVector3(1, 0, 0))
	if p := IntersectLinePlane(parallel, plane); p.IsFinite() {
		t.Errorf("parallel line intersected at %v", p)
	}
	if _, ok := parallel.IntersectPlane(plane); ok {
		t.Error("parallel line reported an intersection")
	}

	inPlane := NewLine(NewPoint3d(1, 1, 2), NewVector3(1, 0, 0))
	if _, ok := inPlane.IntersectPlane(plane); ok {
		t.Error("line lying in the plane reported an intersection")
	}
}

func TestRayInRange(t *testing.T) {
	ray := NewRay(NewPoint3d(0, 0, 0), NewVector3(0, 1, 0))
	if !ray.InRange(NewPoint3d(0, 5, 0)) {
		t.Error("point ahead not in range")
	}
	if !ray.InRange(ray.Origin()) {
		t.Error("origin not in range")
	}
	if ray.InRange(NewPoint3d(0, -1, 0)) {
		t.Error("point behind in range")
	}
}

func TestBoundsBehind(t *testing.T) {
	b := NewBounds(NewPoint3d(0, 0, 0), NewPoint3d(1, 1, 1))

	testCases := []struct {
		name   string
		origin Point3d
		dir    Vector3
		want   bool
	}{
		{"heading toward box", NewPoint3d(0.5, -2, 0.5), NewVector3(0, 1, 0), false},
		{"past box heading away", NewPoint3d(0.5, 2, 0.5), NewVector3(0, 1, 0), true},
		{"before box heading away", NewPoint3d(0.5, -2, 0.5), NewVector3(0, -1, 0), true},
		{"parallel outside slab", NewPoint3d(2, -2, 0.5), NewVector3(0, 1, 0), true},
		{"parallel inside slab", NewPoint3d(0.5, -2, 0.5), NewVector3(0, 1, 0), false},
		{"starting inside", NewPoint3d(0.5, 0.5, 0.5), NewVector3(1, 1, 1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Behind(tc.origin, tc.dir); got != tc.want {
				t.Errorf("Behind = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBoundsContainsAndOverlaps(t *testing.T) {
	b := NewBounds(NewPoint3d(1, 1, 1), NewPoint3d(-1, 0, 2), NewPoint3d(0, 3, 0))
	if b.Min != NewPoint3d(-1, 0, 0) || b.Max != NewPoint3d(1, 3, 2) {
		t.Fatalf("NewBounds = %+v", b)
	}
	if !b.Contains(NewPoint3d(1, 3, 2)) {
		t.Error("corner not contained")
	}
	if b.Contains(NewPoint3d(0, 3.1, 1)) {
		t.Error("outside point contained")
	}
	touching := NewBounds(NewPoint3d(1, 3, 2), NewPoint3d(5, 5, 5))
	if !b.Overlaps(touching) {
		t.Error("touching boxes do not overlap")
	}
	apart := NewBounds(NewPoint3d(1.01, 0, 0), NewPoint3d(5, 5, 5))
	if b.Overlaps(apart) {
		t.Error("separate boxes overlap")
	}
}

func TestPointDistance(t *testing.T) {
	a := NewPoint3d(1, 2, 3)
	b := NewPoint3d(4, 6, 3)
	if d := a.DistanceTo(b); !almostEqual(d, 5) {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
	if NewPoint3d(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN point reported finite")
	}
}
