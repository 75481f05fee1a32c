package raycast3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraConfig is the camera's persistent state. Angles are in degrees, sizes
// in world units unless noted.
type CameraConfig struct {
	Pos             Point3d `json:"pos"`
	RX              float64 `json:"rx"`
	RZ              float64 `json:"rz"`
	FocalLength     float64 `json:"focalLength"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	CanvasWidth     int     `json:"canvasWidth,omitempty"`
	CanvasHeight    int     `json:"canvasHeight,omitempty"`
	Scale           float64 `json:"scale"` // pixels per world unit
	FPS             float64 `json:"fps"`
	Speed           float64 `json:"speed"` // world units per second
	ReflectionLimit int     `json:"reflectionLimit"`
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Pos:             NewPoint3d(0, 0, 0),
		FocalLength:     3,
		Width:           3.2,
		Height:          1.8,
		Scale:           50,
		FPS:             30,
		Speed:           3,
		ReflectionLimit: 4,
	}
}

func (c CameraConfig) validate() error {
	switch {
	case !(c.FocalLength > 0):
		return fmt.Errorf("%w: focal length %g", ErrInvalidCamera, c.FocalLength)
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalidCamera, c.Width, c.Height)
	case !(c.Scale > 0):
		return fmt.Errorf("%w: scale %g", ErrInvalidCamera, c.Scale)
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidCamera, c.CanvasWidth, c.CanvasHeight)
	case !(c.FPS > 0):
		return fmt.Errorf("%w: fps %g", ErrInvalidCamera, c.FPS)
	case c.Speed < 0:
		return fmt.Errorf("%w: speed %g", ErrInvalidCamera, c.Speed)
	case c.ReflectionLimit < 0:
		return fmt.Errorf("%w: reflection limit %d", ErrInvalidCamera, c.ReflectionLimit)
	case !c.Pos.IsFinite():
		return fmt.Errorf("%w: position %v", ErrInvalidCamera, c.Pos)
	}
	return nil
}

// Corners holds one vector or point per viewport corner.
type Corners[T any] struct {
	TopLeft, TopRight, BottomLeft, BottomRight T
}

// Camera is a pinhole camera. Everything below CameraConfig is derived and
// rebuilt by Update; the zero value is not usable, call NewCamera.
//
// The image plane passes through Pos. The focus point sits FocalLength behind
// it and every view ray starts there.
type Camera struct {
	CameraConfig

	Normal        Vector3
	Focus         Point3d
	Plane         Plane
	CornerVectors Corners[Vector3]
	CornerPoints  Corners[Point3d]
	PixelRight    Vector3
	PixelDown     Vector3
}

func NewCamera(cfg CameraConfig) (*Camera, error) {
	if cfg.CanvasWidth == 0 {
		cfg.CanvasWidth = int(math.Round(cfg.Width * cfg.Scale))
	}
	if cfg.CanvasHeight == 0 {
		cfg.CanvasHeight = int(math.Round(cfg.Height * cfg.Scale))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Camera{CameraConfig: cfg}
	c.refresh()
	return c, nil
}

// Update applies one frame of movement from keys and recomputes the derived
// geometry.
func (c *Camera) Update(keys KeyState) {
	c.move(keys)
	c.refresh()
}

func (c *Camera) move(keys KeyState) {
	v := c.Speed / c.FPS
	sinRZ := math.Sin(mgl64.DegToRad(c.RZ))
	cosRZ := math.Cos(mgl64.DegToRad(c.RZ))

	if keys.Pressed(KeyLeft) {
		c.Pos.X -= cosRZ * v
		c.Pos.Y += sinRZ * v
	}
	if keys.Pressed(KeyRight) {
		c.Pos.X += cosRZ * v
		c.Pos.Y -= sinRZ * v
	}
	if keys.Pressed(KeyForward) {
		c.Pos.X += sinRZ * v
		c.Pos.Y += cosRZ * v
	}
	if keys.Pressed(KeyBack) {
		c.Pos.X -= sinRZ * v
		c.Pos.Y -= cosRZ * v
	}
	if keys.Pressed(KeyUp) {
		c.Pos.Z += v
	}
	if keys.Pressed(KeyDown) {
		c.Pos.Z -= v
	}

	if keys.Pressed(KeyYawLeft) {
		c.RZ -= rotationPerKey
	}
	if keys.Pressed(KeyYawRight) {
		c.RZ += rotationPerKey
	}
	if keys.Pressed(KeyPitchUp) {
		c.RX += rotationPerKey
	}
	if keys.Pressed(KeyPitchDown) {
		c.RX -= rotationPerKey
	}
}

func (c *Camera) refresh() {
	rot := RotationXZ(c.RX, c.RZ)

	c.Normal = RotateVector3(rot, NewVector3(0, c.FocalLength, 0))

	w, h := c.Width/2, c.Height/2
	c.CornerVectors = Corners[Vector3]{
		TopLeft:     RotateVector3(rot, NewVector3(-w, 0, h)),
		TopRight:    RotateVector3(rot, NewVector3(w, 0, h)),
		BottomLeft:  RotateVector3(rot, NewVector3(-w, 0, -h)),
		BottomRight: RotateVector3(rot, NewVector3(w, 0, -h)),
	}
	c.CornerPoints = Corners[Point3d]{
		TopLeft:     c.Pos.Move(c.CornerVectors.TopLeft),
		TopRight:    c.Pos.Move(c.CornerVectors.TopRight),
		BottomLeft:  c.Pos.Move(c.CornerVectors.BottomLeft),
		BottomRight: c.Pos.Move(c.CornerVectors.BottomRight),
	}

	c.PixelRight = VectorBetween(c.CornerPoints.TopLeft, c.CornerPoints.TopRight).Scale(1 / float64(c.CanvasWidth))
	c.PixelDown = VectorBetween(c.CornerPoints.TopLeft, c.CornerPoints.BottomLeft).Scale(1 / float64(c.CanvasHeight))

	c.Focus = c.Pos.Move(c.Normal.Neg())
	c.Plane = NewPlaneFromNormal(c.Normal, c.Pos)
}

// ViewRay is the ray from the focus point through pixel (x, y).
func (c *Camera) ViewRay(x, y float64) Ray {
	dir := SumVectors(
		c.PixelDown.Scale(y),
		c.PixelRight.Scale(x),
		c.CornerVectors.TopLeft,
		c.Normal,
	)
	return NewRay(c.Focus, dir)
}

// ScreenPoint is a position on the canvas in pixels.
type ScreenPoint struct {
	X, Y float64
}

// ProjectToScreen maps p to canvas pixels. ok is false when p is behind the
// image plane.
func (c *Camera) ProjectToScreen(p Point3d) (ScreenPoint, bool) {
	if !c.Plane.IsInFrontOf(p) {
		return ScreenPoint{}, false
	}
	ray := NewRay(c.Focus, VectorBetween(c.Focus, p))
	onPlane, ok := ray.IntersectPlane(c.Plane)
	if !ok {
		return ScreenPoint{}, false
	}

	// The image plane is tilted in world space; turn it back to face +Y so
	// that X and Z line up with the canvas axes.
	local := RotateVector3(UnrotationXZ(c.RX, c.RZ), VectorBetween(c.Pos, onPlane))

	return ScreenPoint{
		X: local.X*c.Scale + float64(c.CanvasWidth)/2,
		Y: -local.Z*c.Scale + float64(c.CanvasHeight)/2,
	}, true
}
