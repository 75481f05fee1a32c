package raycast3d

import "fmt"

// Light is a point light. Power sets how slowly brightness falls off.
type Light struct {
	Pos   Point3d
	Power float64
	Color Color
}

func NewLight(pos Point3d, power float64, col Color) (Light, error) {
	if !isFinite(power) || power <= 0 {
		return Light{}, fmt.Errorf("%w: got %g", ErrInvalidLight, power)
	}
	if err := col.Validate(); err != nil {
		return Light{}, err
	}
	return Light{Pos: pos, Power: power, Color: col}, nil
}

// Brightness is power² / (d + power)²: 1 at the light, falling toward 0.
func (l Light) Brightness(d float64) float64 {
	return (l.Power * l.Power) / ((d + l.Power) * (d + l.Power))
}

func (l Light) BrightnessAt(p Point3d) float64 {
	return l.Brightness(l.Pos.DistanceTo(p))
}
