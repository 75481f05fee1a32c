package raycast3d

// Key names understood by Camera.Update.
const (
	KeyLeft        = "a"
	KeyRight       = "d"
	KeyForward     = "w"
	KeyBack        = "s"
	KeyUp          = "space"
	KeyDown        = "shift"
	KeyYawLeft     = "ArrowLeft"
	KeyYawRight    = "ArrowRight"
	KeyPitchUp     = "ArrowUp"
	KeyPitchDown   = "ArrowDown"
	rotationPerKey = 2.0
)

// KeyState maps a key name to whether it is held this frame. Drivers hand a
// fresh snapshot to each frame; the camera only reads it.
type KeyState map[string]bool

func (k KeyState) Pressed(name string) bool {
	return k[name]
}

// Clone copies the map so a driver can keep mutating its own copy.
func (k KeyState) Clone() KeyState {
	c := make(KeyState, len(k))
	for name, down := range k {
		c[name] = down
	}
	return c
}
