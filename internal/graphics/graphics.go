package graphics

import (
	"errors"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNoWindow is returned by Run when raylib could not open a window (e.g. no display).
var ErrNoWindow = errors.New("graphics: window could not be created")

// Window describes the window Run opens.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	TargetFPS  int32
}

// DefaultWindow is a resizable 1280x800 window at 60 FPS.
func DefaultWindow() Window {
	return Window{Title: "dotcube", Width: 1280, Height: 800, TargetFPS: 60}
}

var background = rl.NewColor(12, 12, 16, 255)

// Run opens the window and runs the main loop until it is closed. Each frame it calls update
// with the previous frame's duration (input, animation), then clears the screen and calls draw.
func Run(w Window, update func(dt time.Duration), draw func()) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w.Width, w.Height, w.Title)
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC toggles the command bar; close via window button
	rl.SetTargetFPS(w.TargetFPS)

	for !rl.WindowShouldClose() {
		update(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
	return nil
}
