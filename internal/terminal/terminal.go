// Package terminal draws the ESC-toggled command bar and the recent log above it.
package terminal

import (
	"strings"

	"dotcube/internal/commands"
	"dotcube/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	barHeight = 40
	// Windowed mode lifts the bar so window decorations and taskbars do not hide it.
	windowedLift = 56
	fontSize     = 20
	padding      = 8
	lineHeight   = fontSize + 4
	logLines     = 14
	maxLineLen   = 200
)

var (
	barColor     = rl.NewColor(40, 40, 40, 255)
	barEdgeColor = rl.NewColor(80, 80, 80, 255)
	logColor     = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the command bar. While open it owns the keyboard; "cmd ..." lines run through the
// registry and their errors and output go to the log shown above the bar.
type Terminal struct {
	log  *logger.Logger
	reg  *commands.Registry
	line commands.Line
	open bool
	font rl.Font
}

// New returns a closed terminal writing to log and running commands from reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the bar is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font for the bar and log. The zero Font means raylib's default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles one frame of keyboard input.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
	}
	if !t.open {
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyV) && modifierDown():
		t.line.Insert(rl.GetClipboardText())
	default:
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.line.Insert(string(rune(c)))
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace):
		t.line.Backspace()
	case rl.IsKeyPressed(rl.KeyUp):
		t.line.Prev()
	case rl.IsKeyPressed(rl.KeyDown):
		t.line.Next()
	case rl.IsKeyPressed(rl.KeyTab):
		if matches := t.line.Complete(t.reg.Names()); len(matches) > 1 {
			t.log.Log(strings.Join(matches, "  "))
		}
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		if t.line.Text() != "" {
			t.Submit(t.line.Submit())
		}
	}
}

func modifierDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
}

// Submit echoes line to the log and runs it when it is a "cmd ..." line.
func (t *Terminal) Submit(line string) {
	t.log.Log("> " + line)
	args, ok := commands.Parse(line)
	if !ok {
		t.log.Log(`not a command; try "cmd help"`)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log("error: " + err.Error())
	}
}

// Draw paints the log and the input bar when open. It uses the screen size, not the render
// size, so the bar stays at the bottom in fullscreen.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	w := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - barHeight
	if !rl.IsWindowFullscreen() {
		barY -= windowedLift
	}

	lines := t.log.Lines()
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	logTop := max(barY-logLines*lineHeight, 0)
	if barY > logTop {
		rl.DrawRectangle(0, logTop, w, barY-logTop, logColor)
	}
	for i, line := range lines {
		t.text(truncate(line), logTop+int32(i)*lineHeight+padding, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, w, barHeight, barColor)
	rl.DrawRectangle(0, barY, w, 1, barEdgeColor)
	t.text("> "+t.line.Text()+"|", barY+padding, rl.White)
}

func (t *Terminal) text(s string, y int32, col rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(padding, float32(y)), fontSize, 1, col)
		return
	}
	rl.DrawText(s, padding, y, fontSize, col)
}

func truncate(s string) string {
	if len(s) <= maxLineLen {
		return s
	}
	return s[:maxLineLen-3] + "..."
}
