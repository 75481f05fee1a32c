package raycast3d

import "errors"

// Scene construction errors. Loaders wrap these with the offending element.
var (
	ErrDegenerateFace   = errors.New("face vertices are collinear")
	ErrVertexIndex      = errors.New("vertex index out of range")
	ErrInvalidColor     = errors.New("color out of range")
	ErrInvalidRoughness = errors.New("roughness must be 0 (mirror) or 1 (diffuse)")
	ErrInvalidLight     = errors.New("light power must be positive")
	ErrLightOnFace      = errors.New("light lies on a face")
	ErrInvalidCamera    = errors.New("invalid camera configuration")
)
