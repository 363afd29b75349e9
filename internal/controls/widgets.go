package controls

import (
	"fmt"

	"dotcube/internal/params"

	"github.com/chewxy/math32"
)

// Slider is a numeric control bounded by a params.Range. Values are clamped and snapped to Step.
type Slider struct {
	Label string
	Range params.Range
	Value float32
}

// NewSlider returns a slider over r starting at v.
func NewSlider(label string, r params.Range, v float32) *Slider {
	s := &Slider{Label: label, Range: r}
	s.Set(v)
	return s
}

// Set stores v after snapping and clamping. Returns whether the value changed.
func (s *Slider) Set(v float32) bool {
	r := s.Range
	if r.Step > 0 {
		v = r.Min + math32.Floor((v-r.Min)/r.Step+0.5)*r.Step
	}
	v = r.Clamp(v)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Fraction returns the knob position in [0, 1].
func (s *Slider) Fraction() float32 {
	span := s.Range.Max - s.Range.Min
	if span <= 0 {
		return 0
	}
	return (s.Value - s.Range.Min) / span
}

// SetFraction moves the knob to f (0 = Min, 1 = Max), e.g. from a mouse drag.
func (s *Slider) SetFraction(f float32) bool {
	f = min(max(f, 0), 1)
	return s.Set(s.Range.Min + f*(s.Range.Max-s.Range.Min))
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) bool {
	step := s.Range.Step
	if step <= 0 {
		step = 1
	}
	return s.Set(s.Value + float32(n)*step)
}

// Text is the slider caption, e.g. "Size: 200".
func (s *Slider) Text() string {
	return fmt.Sprintf("%s: %g", s.Label, s.Value)
}

// Toggle is a checkbox.
type Toggle struct {
	Label string
	On    bool
}

// Flip inverts the toggle.
func (t *Toggle) Flip() {
	t.On = !t.On
}

func (t *Toggle) Text() string {
	mark := "[ ]"
	if t.On {
		mark = "[x]"
	}
	return mark + " " + t.Label
}

// Select picks one animation axis.
type Select struct {
	Label string
	Value params.Axis
}

// Next advances to the following axis, wrapping around.
func (s *Select) Next() {
	s.Value = s.Value.Next()
}

func (s *Select) Text() string {
	return fmt.Sprintf("%s: %s", s.Label, s.Value)
}
