package tui

import "dotcube/internal/controls"

// KeyHelp is shown on the first line of the screen.
const KeyHelp = "s/S size  p/P spacing  f/F speed  r/R radius  a axis  w wireframe  0 reset  q quit"

// HandleRune applies a key press to the panel and commits it. It reports whether the key asks
// to quit. Lowercase decreases a value, uppercase increases it.
func HandleRune(panel *controls.Panel, r rune, reset func()) (quit bool) {
	switch r {
	case 'q', 'Q':
		return true
	case 's':
		panel.Size.Nudge(-1)
	case 'S':
		panel.Size.Nudge(1)
	case 'p':
		panel.Spacing.Nudge(-1)
	case 'P':
		panel.Spacing.Nudge(1)
	case 'f':
		panel.Speed.Nudge(-1)
	case 'F':
		panel.Speed.Nudge(1)
	case 'r':
		panel.Radius.Nudge(-1)
	case 'R':
		panel.Radius.Nudge(1)
	case 'a', 'A':
		panel.Axis.Next()
	case 'w', 'W':
		panel.Wireframe.Flip()
	case '0':
		if reset != nil {
			reset()
		}
	}
	panel.Commit()
	return false
}
