package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime overlays drawn at the top-right: FPS, heap allocation and point count.
// All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowPoints   bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	points       int
	lastFpsText  string
	lastMemText  string
	lastPtsText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used to draw the overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// SetPoints records how many points the lattice currently has.
func (d *Debug) SetPoints(n int) {
	if n != d.points {
		d.points = n
		d.lastPtsText = ""
	}
}

// Draw renders any enabled overlays, one per line, right-aligned.
// Text is only recomputed every updateInterval frames (or when first shown) to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0

	y := int32(padding)
	if d.ShowFPS {
		if update || d.lastFpsText == "" {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawLine(d.lastFpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update || d.lastMemText == "" {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawLine(d.lastMemText, y)
		y += lineHeight
	}
	if d.ShowPoints {
		if d.lastPtsText == "" {
			d.lastPtsText = fmt.Sprintf("Points: %d", d.points)
		}
		d.drawLine(d.lastPtsText, y)
	}
}

func (d *Debug) drawLine(text string, y int32) {
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-padding, float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
