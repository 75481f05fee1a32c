package raycast3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	ROTX = 0
	ROTZ = 1
)

// NewRotationMatrix returns a counter-clockwise rotation of degrees about the
// given axis.
func NewRotationMatrix(axis int, degrees float64) mgl64.Mat3 {
	theta := mgl64.DegToRad(degrees)
	switch axis {
	case ROTX:
		return mgl64.Rotate3DX(theta)
	case ROTZ:
		return mgl64.Rotate3DZ(theta)
	}
	return mgl64.Ident3()
}

// RotationXZ is the camera orientation: pitch rx about X first, then yaw rz
// about Z. Yaw is clockwise seen from above so that rz=90 looks along +X.
func RotationXZ(rx, rz float64) mgl64.Mat3 {
	pitch := NewRotationMatrix(ROTX, rx)
	yaw := NewRotationMatrix(ROTZ, -rz)
	return yaw.Mul3(pitch)
}

// UnrotationXZ undoes RotationXZ.
func UnrotationXZ(rx, rz float64) mgl64.Mat3 {
	return RotationXZ(rx, rz).Transpose()
}

// RotateVector3 applies m to a direction vector.
func RotateVector3(m mgl64.Mat3, v Vector3) Vector3 {
	r := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vector3{X: r[0], Y: r[1], Z: r[2]}
}
