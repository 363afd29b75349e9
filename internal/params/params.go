package params

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Range is the inclusive min/max a slider allows, with its step.
type Range struct {
	Min, Max, Step float32
}

// Clamp returns v limited to [Min, Max]. NaN maps to Min.
func (r Range) Clamp(v float32) float32 {
	if math32.IsNaN(v) {
		return r.Min
	}
	return min(max(v, r.Min), r.Max)
}

// Slider bounds for each numeric parameter. Size stays positive and spacing has a minimum of 1
// so the lattice step size/spacing is always defined.
var (
	SizeRange    = Range{Min: 50, Max: 400, Step: 10}
	SpacingRange = Range{Min: 1, Max: 10, Step: 1}
	SpeedRange   = Range{Min: 1, Max: 50, Step: 1}
	RadiusRange  = Range{Min: 1, Max: 40, Step: 1}
)

// RenderParameters is everything the user can change from the control panel.
// Size and Radius are in pixels; Speed is turns per 100 seconds.
type RenderParameters struct {
	Size      float32 `yaml:"size"`
	Spacing   int     `yaml:"spacing"`
	Speed     float32 `yaml:"speed"`
	Radius    float32 `yaml:"radius"`
	Axis      Axis    `yaml:"axis"`
	Wireframe bool    `yaml:"wireframe"`
}

// Default returns the parameters the demo starts with.
func Default() RenderParameters {
	return RenderParameters{
		Size:      200,
		Spacing:   5,
		Speed:     10,
		Radius:    10,
		Axis:      Rotate,
		Wireframe: false,
	}
}

// Clamp returns a copy of p with every value inside its slider bounds.
// An unknown axis falls back to Rotate.
func (p RenderParameters) Clamp() RenderParameters {
	p.Size = SizeRange.Clamp(p.Size)
	p.Spacing = int(SpacingRange.Clamp(float32(p.Spacing)))
	p.Speed = SpeedRange.Clamp(p.Speed)
	p.Radius = RadiusRange.Clamp(p.Radius)
	if !p.Axis.Valid() {
		p.Axis = Rotate
	}
	return p
}

// SameLattice reports whether p and q produce the same set of points.
// Only size and spacing feed the lattice.
func (p RenderParameters) SameLattice(q RenderParameters) bool {
	return p.Size == q.Size && p.Spacing == q.Spacing
}

// SameAnimation reports whether p and q drive the same rotation.
func (p RenderParameters) SameAnimation(q RenderParameters) bool {
	return p.Speed == q.Speed && p.Axis == q.Axis
}

func (p RenderParameters) String() string {
	return fmt.Sprintf("size=%g spacing=%d speed=%g radius=%g axis=%s wireframe=%t",
		p.Size, p.Spacing, p.Speed, p.Radius, p.Axis, p.Wireframe)
}
