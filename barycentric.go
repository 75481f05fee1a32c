package raycast3d

import "math"

// SolveBarycentric expresses p as s*a + t*b, with p, a and b coplanar.
//
// The 2x2 system is solved on the axis pair whose subdeterminant is largest
// in magnitude, which is the pair the plane's normal projects onto least
// obliquely. Ties keep the order (x,y), (y,z), (z,x). If every pair is
// degenerate the triangle has no area and ok is false.
func SolveBarycentric(p, a, b Vector3) (s, t float64, ok bool) {
	pairs := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	pv, av, bv := components(p), components(a), components(b)

	best, bestDet := -1, 0.0
	for i, pair := range pairs {
		u, v := pair[0], pair[1]
		det := bv[u]*av[v] - bv[v]*av[u]
		if !isFinite(det) {
			continue
		}
		if math.Abs(det) > math.Abs(bestDet) {
			best, bestDet = i, det
		}
	}
	if best < 0 || bestDet == 0 {
		return 0, 0, false
	}

	u, v := pairs[best][0], pairs[best][1]
	t = (pv[u]*av[v] - pv[v]*av[u]) / bestDet
	if math.Abs(av[u]) >= math.Abs(av[v]) {
		s = (pv[u] - t*bv[u]) / av[u]
	} else {
		s = (pv[v] - t*bv[v]) / av[v]
	}
	if !isFinite(s) || !isFinite(t) {
		return 0, 0, false
	}
	return s, t, true
}

func components(v Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
