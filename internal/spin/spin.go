// Package spin turns elapsed time into the rotation of the lattice container.
// The rotation is a pure function of (axis selector, period, elapsed time); the only state is
// the elapsed time kept by Clock.
package spin

import (
	"time"

	"dotcube/internal/params"

	"github.com/go-gl/mathgl/mgl32"
)

// periodScale is the number of seconds one full turn takes at speed 1.
const periodScale = 100

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// AxisAngle is a rotation of Degrees around the unit vector Axis.
type AxisAngle struct {
	Axis    mgl32.Vec3
	Degrees float32
}

// Animation describes one continuous rotation: which axes turn and how long a full turn takes.
type Animation struct {
	Axis   params.Axis
	Period time.Duration
}

// Period returns the duration of one full turn for the given speed (100/speed seconds).
// A non-positive speed has no period and the container stands still.
func Period(speed float32) time.Duration {
	if speed <= 0 {
		return 0
	}
	return time.Duration(periodScale / float64(speed) * float64(time.Second))
}

// New returns the animation for an axis selector and speed.
func New(axis params.Axis, speed float32) Animation {
	return Animation{Axis: axis, Period: Period(speed)}
}

// FromParams returns the animation driven by p.
func FromParams(p params.RenderParameters) Animation {
	return New(p.Axis, p.Speed)
}

// Angle returns the rotation in degrees, in [0, 360), after elapsed time.
func (a Animation) Angle(elapsed time.Duration) float32 {
	if a.Period <= 0 {
		return 0
	}
	e := elapsed % a.Period
	if e < 0 {
		e += a.Period
	}
	return float32(360 * float64(e) / float64(a.Period))
}

// Rotations returns the per-axis rotations to apply, in X, Y, Z order.
// Every enabled axis turns by the same angle.
func (a Animation) Rotations(elapsed time.Duration) []AxisAngle {
	deg := a.Angle(elapsed)
	x, y, z := a.Axis.Spins()
	out := make([]AxisAngle, 0, 3)
	if x {
		out = append(out, AxisAngle{Axis: axisX, Degrees: deg})
	}
	if y {
		out = append(out, AxisAngle{Axis: axisY, Degrees: deg})
	}
	if z {
		out = append(out, AxisAngle{Axis: axisZ, Degrees: deg})
	}
	return out
}

// Matrix returns the homogeneous rotation for elapsed time (Rx * Ry * Rz for the enabled axes).
func (a Animation) Matrix(elapsed time.Duration) mgl32.Mat4 {
	m := mgl32.Ident4()
	for _, r := range a.Rotations(elapsed) {
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(r.Degrees), r.Axis))
	}
	return m
}
