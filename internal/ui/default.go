package ui

import (
	_ "embed"

	"dotcube/internal/style"
)

//go:embed panel.css
var defaultCSS string

// DefaultStylesheet returns the built-in control panel stylesheet.
func DefaultStylesheet() (*style.Stylesheet, error) {
	return style.Parse(defaultCSS)
}
