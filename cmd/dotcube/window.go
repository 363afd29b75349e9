package main

import (
	"time"

	"dotcube/internal/boxdots"
	"dotcube/internal/commands"
	"dotcube/internal/debug"
	"dotcube/internal/fonts"
	"dotcube/internal/graphics"
	"dotcube/internal/logger"
	"dotcube/internal/scene"
	"dotcube/internal/terminal"
	"dotcube/internal/ui"
	"dotcube/internal/viewer"
)

// runWindow opens the raylib window: 3D lattice, control panel, status line, debug overlays and
// the ESC command bar.
func runWindow(v *viewer.Viewer, lines *logger.Logger, fullscreen bool) error {
	reg := commands.NewRegistry()
	v.Register(reg)

	term := terminal.New(lines, reg)
	scn := scene.New()
	dots := boxdots.New()
	dbg := debug.New()
	dbg.ShowPoints = true

	engine := ui.New()
	if sheet, err := ui.DefaultStylesheet(); err == nil {
		engine.SetStylesheet(sheet)
	} else {
		lines.Logf("default stylesheet: %v", err)
	}
	if path := v.Prefs.Stylesheet; path != "" {
		if err := engine.LoadCSS(path); err != nil {
			lines.Logf("stylesheet %s: %v", path, err)
		}
	}
	panel := ui.NewControlPanel(v.Panel)
	status := ui.NewNode(ui.TypeLabel, "status", "status", "")
	nodes := append(append([]*ui.Node{}, panel.Nodes()...), status)

	framedSize := float32(-1)
	fontLoaded := false

	update := func(dt time.Duration) {
		// GPU resources (font) can only be created once the window exists.
		if !fontLoaded {
			fontLoaded = true
			loadFont(v.Prefs.Font, engine, term, dbg, lines)
		}
		term.Update()
		engine.SetNodes(nodes)
		// The open command bar owns the mouse; the panel still syncs command changes.
		ptr := ui.Pointer{}
		if !term.IsOpen() {
			ptr = ui.ReadPointer()
		}
		captured := panel.Update(engine, ptr) || term.IsOpen()
		scn.Update(captured)

		p := v.Params()
		if p.Size != framedSize {
			framedSize = p.Size
			scn.Frame(dots.Extent(p))
		}
		scn.SetGridVisible(v.Prefs.GridVisible)
		dbg.ShowFPS = v.Prefs.ShowFPS
		dbg.ShowMemAlloc = v.Prefs.ShowMemAlloc
		dbg.SetPoints(len(v.Points()))
		status.Text = v.Status()

		v.Advance(dt)
	}

	draw := func() {
		p := v.Params()
		points := v.Points()
		rot := v.Clock().Rotations()
		scn.Draw(func() {
			dots.Draw(p, points, rot)
		})
		engine.Draw()
		dbg.Draw()
		term.Draw()
	}

	w := graphics.DefaultWindow()
	w.Fullscreen = fullscreen
	return graphics.Run(w, update, draw)
}

func loadFont(pref string, engine *ui.Engine, term *terminal.Terminal, dbg *debug.Debug, lines *logger.Logger) {
	if pref == "" {
		return
	}
	path, err := fonts.Find(pref, fonts.BaseDirs())
	if err != nil {
		lines.Logf("font %q not found", pref)
		return
	}
	if err := engine.LoadFont(path); err != nil {
		lines.Logf("font %s: %v", path, err)
		return
	}
	font := engine.Font()
	term.SetFont(font)
	dbg.SetFont(font)
	lines.Logf("font %s loaded", path)
}
