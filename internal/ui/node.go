package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node types understood by Engine.Draw.
const (
	TypePanel    = "panel"
	TypeLabel    = "label"
	TypeSlider   = "slider"
	TypeCheckbox = "checkbox"
	TypeSelect   = "select"
)

// Node is a single UI element: panel, label, slider, etc. It has optional class and id for CSS
// matching, bounds (position and size), and optional text.
// Manual nodes keep the Bounds their owner sets; otherwise left/top/width/height come from CSS.
// Value is the knob position (0–1) for sliders and the checked state (0 or 1) for checkboxes.
type Node struct {
	Type   string
	Class  string
	ID     string
	Bounds rl.Rectangle
	Text   string
	Value  float32
	Manual bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// Contains reports whether the screen point lies inside the node's last drawn bounds.
// Like raylib's collision check, the left and top edges are inside and the right and bottom are not.
func (n *Node) Contains(p rl.Vector2) bool {
	b := n.Bounds
	return p.X >= b.X && p.X < b.X+b.Width && p.Y >= b.Y && p.Y < b.Y+b.Height
}
