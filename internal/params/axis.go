package params

import (
	"errors"
	"fmt"
)

// Axis selects which axes the lattice container spins around.
type Axis int

const (
	// Rotate spins around X, Y and Z together.
	Rotate Axis = iota
	RotateXY
	RotateXZ
	RotateYZ
	RotateX
	RotateY
	RotateZ
)

// ErrUnknownAxis is returned by ParseAxis for names that are not an animation axis.
var ErrUnknownAxis = errors.New("unknown animation axis")

var axisNames = [...]string{
	Rotate:   "rotate",
	RotateXY: "rotateXY",
	RotateXZ: "rotateXZ",
	RotateYZ: "rotateYZ",
	RotateX:  "rotateX",
	RotateY:  "rotateY",
	RotateZ:  "rotateZ",
}

// Axes returns every axis in menu order.
func Axes() []Axis {
	return []Axis{Rotate, RotateXY, RotateXZ, RotateYZ, RotateX, RotateY, RotateZ}
}

// Valid reports whether a is one of the declared axes.
func (a Axis) Valid() bool {
	return a >= Rotate && a <= RotateZ
}

func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Next returns the following axis in menu order, wrapping around.
func (a Axis) Next() Axis {
	if !a.Valid() {
		return Rotate
	}
	return (a + 1) % Axis(len(axisNames))
}

// Spins reports which of the X, Y and Z axes the selector turns.
func (a Axis) Spins() (x, y, z bool) {
	switch a {
	case Rotate:
		return true, true, true
	case RotateXY:
		return true, true, false
	case RotateXZ:
		return true, false, true
	case RotateYZ:
		return false, true, true
	case RotateX:
		return true, false, false
	case RotateY:
		return false, true, false
	case RotateZ:
		return false, false, true
	}
	return false, false, false
}

// ParseAxis returns the axis with the given name (e.g. "rotateXY").
func ParseAxis(name string) (Axis, error) {
	for i, n := range axisNames {
		if n == name {
			return Axis(i), nil
		}
	}
	return Rotate, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
}

// MarshalText implements encoding.TextMarshaler so config files carry the axis name.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	v, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
