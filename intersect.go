package raycast3d

import "sort"

// Hit is a face crossed by a ray or edge.
type Hit struct {
	Face     *Face
	Point    Point3d
	Distance float64
}

// IntersectRayFace returns where ray enters face, if it does.
func IntersectRayFace(ray Ray, face *Face) (Point3d, bool) {
	if face.Bounds.Behind(ray.Origin(), ray.Dir) {
		return Point3d{}, false
	}
	pt, ok := ray.IntersectPlane(face.Plane)
	if !ok || !ray.InRange(pt) {
		return Point3d{}, false
	}
	if !face.Contains(pt) {
		return Point3d{}, false
	}
	return pt, true
}

// IntersectEdgeFace returns where edge crosses face, if it does.
func IntersectEdgeFace(edge Edge, face *Face) (Point3d, bool) {
	if !edge.Bounds.Overlaps(face.Bounds) {
		return Point3d{}, false
	}
	pt, ok := edge.IntersectPlane(face.Plane)
	if !ok {
		return Point3d{}, false
	}
	if !face.Contains(pt) {
		return Point3d{}, false
	}
	return pt, true
}

// RayHits returns every face the ray enters, nearest first.
func RayHits(ray Ray, faces []Face) []Hit {
	var hits []Hit
	for i := range faces {
		pt, ok := IntersectRayFace(ray, &faces[i])
		if !ok {
			continue
		}
		hits = append(hits, Hit{Face: &faces[i], Point: pt, Distance: ray.Origin().DistanceTo(pt)})
	}
	sortHits(hits)
	return hits
}

// EdgeHits returns every face the edge crosses, nearest to V1 first.
func EdgeHits(edge Edge, faces []Face) []Hit {
	var hits []Hit
	for i := range faces {
		pt, ok := IntersectEdgeFace(edge, &faces[i])
		if !ok {
			continue
		}
		hits = append(hits, Hit{Face: &faces[i], Point: pt, Distance: edge.V1.Point.DistanceTo(pt)})
	}
	sortHits(hits)
	return hits
}

// sortHits orders by distance; equal distances keep scene order.
func sortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
}
