package ui

import (
	"image/color"
	"os"

	"dotcube/internal/style"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sliderTrackHeight = 4
	sliderKnobWidth   = 8
	checkboxSize      = 14
)

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change to avoid per-frame allocations.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet        *style.Stylesheet
	nodes        []*Node
	cachedStyles []style.Computed
	cacheValid   bool
	font         rl.Font
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := style.Parse(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from the embedded default).
func (e *Engine) SetStylesheet(sheet *style.Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font (zero texture ID when using the default).
func (e *Engine) Font() rl.Font {
	return e.font
}

// SetNodes replaces all nodes. Passing the same slice contents again keeps the style cache.
func (e *Engine) SetNodes(nodes []*Node) {
	if sameNodes(e.nodes, nodes) {
		return
	}
	e.nodes = append(e.nodes[:0], nodes...)
	e.cacheValid = false
}

func sameNodes(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Style returns the computed style for n, resolving it if it is not one of the engine's nodes.
func (e *Engine) Style(n *Node) style.Computed {
	e.ensureStyles()
	for i, m := range e.nodes {
		if m == n {
			return e.cachedStyles[i]
		}
	}
	return style.Compute(e.sheet.Resolve(n.Class, n.ID))
}

func (e *Engine) ensureStyles() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]style.Computed, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = style.Compute(e.sheet.Resolve(n.Class, n.ID))
	}
	e.cacheValid = true
}

// layout sets n.Bounds from style (left, top, width, height, percentages) unless n is Manual.
func layout(n *Node, st style.Computed, screenW, screenH int32) {
	if n.Manual {
		return
	}
	if st.Width > 0 {
		n.Bounds.Width = float32(st.Width)
	}
	if st.Height > 0 {
		n.Bounds.Height = float32(st.Height)
	}
	x, y := st.Left, st.Top
	if st.LeftPct >= 0 {
		x = (screenW - int32(n.Bounds.Width)) * st.LeftPct / 100
	}
	if st.TopPct >= 0 {
		y = (screenH - int32(n.Bounds.Height)) * st.TopPct / 100
	}
	n.Bounds.X = float32(x)
	n.Bounds.Y = float32(y)
}

// Layout positions every non-manual node for the current screen size without drawing.
// Owners of manual nodes call it first so they can place children relative to a parent.
func (e *Engine) Layout() {
	e.ensureStyles()
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		layout(n, e.cachedStyles[i], screenW, screenH)
	}
}

// Draw lays out and draws all nodes: background, border, the control itself, then text.
func (e *Engine) Draw() {
	e.Layout()
	for i, n := range e.nodes {
		st := e.cachedStyles[i]
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if st.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, toRL(st.Background))
		}
		if st.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, toRL(st.Border))
		}

		textX := x + st.Padding
		switch n.Type {
		case TypeSlider:
			e.drawSlider(n, st)
		case TypeCheckbox:
			box := rl.NewRectangle(float32(textX), float32(y+(h-checkboxSize)/2), checkboxSize, checkboxSize)
			rl.DrawRectangleLinesEx(box, 1, toRL(st.Color))
			if n.Value > 0 {
				rl.DrawRectangleRec(inset(box, 3), toRL(st.Accent))
			}
			textX += checkboxSize + st.Padding
		}

		if n.Text != "" {
			e.drawText(n.Text, textX, y+st.Padding, st)
		}
	}
}

// drawSlider draws the track along the bottom half of the node and a knob at n.Value.
func (e *Engine) drawSlider(n *Node, st style.Computed) {
	track := SliderTrack(n, st.Padding)
	rl.DrawRectangleRec(track, toRL(st.Border))
	knobX := track.X + n.Value*track.Width - sliderKnobWidth/2
	knob := rl.NewRectangle(knobX, track.Y-6, sliderKnobWidth, sliderTrackHeight+12)
	rl.DrawRectangleRec(knob, toRL(st.Accent))
}

// SliderTrack returns the draggable track of a slider node in screen coordinates.
func SliderTrack(n *Node, padding int32) rl.Rectangle {
	b := n.Bounds
	pad := float32(padding)
	return rl.NewRectangle(b.X+pad, b.Y+b.Height-pad-sliderTrackHeight-6, b.Width-2*pad, sliderTrackHeight)
}

func (e *Engine) drawText(text string, x, y int32, st style.Computed) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), float32(st.FontSize), 1, toRL(st.Color))
		return
	}
	rl.DrawText(text, x, y, st.FontSize, toRL(st.Color))
}

// HasStylesheet returns whether a stylesheet with at least one rule is set.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func inset(r rl.Rectangle, d float32) rl.Rectangle {
	return rl.NewRectangle(r.X+d, r.Y+d, r.Width-2*d, r.Height-2*d)
}
