// Package controls is the model behind the control panel: sliders for size, spacing, speed and
// radius, a wireframe checkbox and an axis select, all bound to one params.RenderParameters.
// Drawing and pointer handling live in the frontends (ui, tui); they mutate widgets and call
// Commit.
package controls

import "dotcube/internal/params"

// Panel holds the widgets and the last committed parameters.
type Panel struct {
	Size      *Slider
	Spacing   *Slider
	Speed     *Slider
	Radius    *Slider
	Wireframe *Toggle
	Axis      *Select

	// OnChange, if set, is called from Commit once per effective change.
	OnChange func(old, next params.RenderParameters)

	committed params.RenderParameters
}

// NewPanel returns a panel showing p (clamped).
func NewPanel(p params.RenderParameters) *Panel {
	p = p.Clamp()
	return &Panel{
		Size:      NewSlider("Size", params.SizeRange, p.Size),
		Spacing:   NewSlider("Spacing", params.SpacingRange, float32(p.Spacing)),
		Speed:     NewSlider("Speed", params.SpeedRange, p.Speed),
		Radius:    NewSlider("Radius", params.RadiusRange, p.Radius),
		Wireframe: &Toggle{Label: "Wireframe", On: p.Wireframe},
		Axis:      &Select{Label: "Axis", Value: p.Axis},
		committed: p,
	}
}

// Sliders returns the sliders in display order.
func (p *Panel) Sliders() []*Slider {
	return []*Slider{p.Size, p.Spacing, p.Speed, p.Radius}
}

// Params reads the current widget values.
func (p *Panel) Params() params.RenderParameters {
	return params.RenderParameters{
		Size:      p.Size.Value,
		Spacing:   int(p.Spacing.Value),
		Speed:     p.Speed.Value,
		Radius:    p.Radius.Value,
		Axis:      p.Axis.Value,
		Wireframe: p.Wireframe.On,
	}.Clamp()
}

// Committed returns the parameters as of the last Commit.
func (p *Panel) Committed() params.RenderParameters {
	return p.committed
}

// Commit publishes the widget values. It returns true and calls OnChange when they differ from
// the previous commit.
func (p *Panel) Commit() bool {
	next := p.Params()
	if next == p.committed {
		return false
	}
	old := p.committed
	p.committed = next
	if p.OnChange != nil {
		p.OnChange(old, next)
	}
	return true
}

// Apply sets every widget from rp (clamped) and commits.
func (p *Panel) Apply(rp params.RenderParameters) bool {
	rp = rp.Clamp()
	p.Size.Set(rp.Size)
	p.Spacing.Set(float32(rp.Spacing))
	p.Speed.Set(rp.Speed)
	p.Radius.Set(rp.Radius)
	p.Wireframe.On = rp.Wireframe
	p.Axis.Value = rp.Axis
	return p.Commit()
}
