// Package tui renders the lattice in a terminal with tcell: points are rotated on the CPU,
// projected orthographically and painted back to front in their depth shade.
package tui

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"dotcube/internal/params"
	"dotcube/internal/viewer"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 40 * time.Millisecond
	minWidth      = 16
	minHeight     = 8
	// headerRows/footerRows are reserved for the key help and status lines.
	headerRows = 2
	footerRows = 2
)

// Run takes over the terminal until ctx is done or the user quits.
func Run(ctx context.Context, v *viewer.Viewer) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tui: screen start failed: %w", err)
	}
	defer s.Fini()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	// Input goroutine: only forwards events; all state changes happen on the render loop.
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return nil
				case tcell.KeyRune:
					if HandleRune(v.Panel, ev.Rune(), func() { v.Panel.Apply(params.Default()) }) {
						return nil
					}
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case now := <-ticker.C:
			v.Advance(now.Sub(last))
			last = now
			draw(s, v)
		}
	}
}

func draw(s tcell.Screen, v *viewer.Viewer) {
	s.Clear()
	w, h := s.Size()
	if w < minWidth || h < minHeight {
		s.Show()
		return
	}
	p := v.Params()
	rot := v.Clock().Matrix()
	areaH := h - headerRows - footerRows

	drawText(s, 1, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite), KeyHelp)
	for _, c := range Cells(v.Points(), p, rot, w, areaH) {
		setCell(s, c, headerRows)
	}
	drawText(s, 1, h-footerRows, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), v.Status())
	s.Show()
}

func setCell(s tcell.Screen, c Cell, top int) {
	s.SetContent(c.X, c.Y+top, c.Glyph, nil, tcell.StyleDefault.Foreground(rgb(c.Color)))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
