package ui

import (
	"dotcube/internal/controls"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const rowHeight = 44

// ControlPanel draws a controls.Panel as styled nodes (.controls, .control-title, .slider,
// .checkbox, .select) and turns mouse input into widget changes.
// Rows are placed manually below the panel's CSS position; everything else comes from CSS.
type ControlPanel struct {
	model *controls.Panel

	panel     *Node
	title     *Node
	sliders   []*Node
	wireframe *Node
	axis      *Node

	dragging int // index into sliders, -1 when no drag is active
	nodes    []*Node
}

// NewControlPanel creates the nodes for model.
func NewControlPanel(model *controls.Panel) *ControlPanel {
	cp := &ControlPanel{
		model:     model,
		panel:     NewNode(TypePanel, "controls", "controls", ""),
		title:     NewNode(TypeLabel, "control-title", "", "Controls"),
		wireframe: NewNode(TypeCheckbox, "checkbox", "wireframe", ""),
		axis:      NewNode(TypeSelect, "select", "axis", ""),
		dragging:  -1,
	}
	for _, s := range model.Sliders() {
		cp.sliders = append(cp.sliders, NewNode(TypeSlider, "slider", s.Label, ""))
	}
	cp.title.Manual = true
	cp.wireframe.Manual = true
	cp.axis.Manual = true
	for _, n := range cp.sliders {
		n.Manual = true
	}
	cp.nodes = append([]*Node{cp.panel, cp.title}, cp.sliders...)
	cp.nodes = append(cp.nodes, cp.wireframe, cp.axis)
	return cp
}

// Model returns the widget model behind the panel.
func (cp *ControlPanel) Model() *controls.Panel {
	return cp.model
}

// Nodes returns the panel's nodes in draw order.
func (cp *ControlPanel) Nodes() []*Node {
	return cp.nodes
}

// Pointer is the mouse state for one frame. The zero Pointer means no input, which callers pass
// while another layer (the command bar) owns the keyboard and mouse.
type Pointer struct {
	Pos     rl.Vector2
	Pressed bool // left button went down this frame
	Down    bool // left button is held
}

// ReadPointer samples the raylib mouse.
func ReadPointer() Pointer {
	return Pointer{
		Pos:     rl.GetMousePosition(),
		Pressed: rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Down:    rl.IsMouseButtonDown(rl.MouseButtonLeft),
	}
}

// Update lays the panel out, applies ptr to the widgets and commits any change to the model.
// Returns whether the pointer is over the panel or dragging a slider, so callers can keep camera
// controls from reacting to it.
func (cp *ControlPanel) Update(e *Engine, ptr Pointer) bool {
	cp.place(e)
	captured := cp.handle(e, ptr)
	cp.model.Commit()
	cp.sync()
	return captured
}

// handle turns one frame of pointer state into widget changes. Node bounds must be placed.
func (cp *ControlPanel) handle(e *Engine, ptr Pointer) bool {
	if ptr.Pressed {
		for i, n := range cp.sliders {
			if n.Contains(ptr.Pos) {
				cp.dragging = i
			}
		}
		if cp.wireframe.Contains(ptr.Pos) {
			cp.model.Wireframe.Flip()
		}
		if cp.axis.Contains(ptr.Pos) {
			cp.model.Axis.Next()
		}
	}
	if cp.dragging >= 0 {
		if ptr.Down {
			n := cp.sliders[cp.dragging]
			track := SliderTrack(n, e.Style(n).Padding)
			if track.Width > 0 {
				cp.model.Sliders()[cp.dragging].SetFraction((ptr.Pos.X - track.X) / track.Width)
			}
		} else {
			cp.dragging = -1
		}
	}
	return cp.panel.Contains(ptr.Pos) || cp.dragging >= 0
}

// place lays rows out under the panel's top-left corner and sizes the panel to fit.
func (cp *ControlPanel) place(e *Engine) {
	e.Layout()
	b := cp.panel.Bounds
	pad := float32(e.Style(cp.panel).Padding)
	w := b.Width - 2*pad
	y := b.Y + pad
	row := func(n *Node) {
		n.Bounds = rl.NewRectangle(b.X+pad, y, w, rowHeight)
		y += rowHeight
	}
	row(cp.title)
	for _, n := range cp.sliders {
		row(n)
	}
	row(cp.wireframe)
	row(cp.axis)
	cp.panel.Bounds.Height = y + pad - b.Y
}

// sync copies widget values into node text and knob positions.
func (cp *ControlPanel) sync() {
	for i, s := range cp.model.Sliders() {
		cp.sliders[i].Text = s.Text()
		cp.sliders[i].Value = s.Fraction()
	}
	cp.wireframe.Text = cp.model.Wireframe.Label
	cp.wireframe.Value = 0
	if cp.model.Wireframe.On {
		cp.wireframe.Value = 1
	}
	cp.axis.Text = cp.model.Axis.Text()
}
