package style

import (
	"image/color"
	"strconv"
	"strings"
)

// Rule maps the properties of one selector to their unparsed values.
type Rule struct {
	Selector string // ".class" or "#id"
	Props    map[string]string
}

// Stylesheet holds rules in source order; a later match wins.
type Stylesheet struct {
	Rules []Rule
}

// Resolve merges the properties of every rule whose selector matches class or id.
// Rules apply in order, so later rules win.
func (s *Stylesheet) Resolve(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		if !Matches(rule.Selector, class, id) {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// Matches reports whether a ".class" or "#id" selector applies to a node.
func Matches(selector, class, id string) bool {
	if len(selector) < 2 {
		return false
	}
	switch selector[0] {
	case '.':
		return class != "" && selector[1:] == class
	case '#':
		return id != "" && selector[1:] == id
	}
	return false
}

// Computed holds resolved values used for drawing.
// A negative LeftPct or TopPct means the pixel Left or Top applies. Padding insets text and
// controls from the node's edges.
// Accent colors the interactive part of a control (slider knob, checkbox mark).
type Computed struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	Accent     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
}

var (
	transparent = color.RGBA{}
	white       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black       = color.RGBA{A: 255}
	accentBlue  = color.RGBA{R: 80, G: 160, B: 255, A: 255}
)

// Default returns a minimal style (transparent background, white text, no border, zero size).
func Default() Computed {
	return Computed{
		Background: transparent,
		Color:      white,
		Border:     black,
		Accent:     accentBlue,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   20,
	}
}

// ParseHexColor parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA. Returns black and false on parse error.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return black, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return black, false
		}
	}
	nib := func(i int) uint8 {
		b, _ := hexByte(hex[i])
		return b
	}
	switch len(hex) {
	case 3:
		// short forms: each digit doubled
		return color.RGBA{R: nib(0) * 17, G: nib(1) * 17, B: nib(2) * 17, A: 255}, true
	case 4:
		return color.RGBA{R: nib(0) * 17, G: nib(1) * 17, B: nib(2) * 17, A: nib(3) * 17}, true
	case 6:
		return color.RGBA{R: nib(0)<<4 + nib(1), G: nib(2)<<4 + nib(3), B: nib(4)<<4 + nib(5), A: 255}, true
	case 8:
		return color.RGBA{R: nib(0)<<4 + nib(1), G: nib(2)<<4 + nib(3), B: nib(4)<<4 + nib(5), A: nib(6)<<4 + nib(7)}, true
	}
	return black, false
}

func hexByte(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParsePx reads "12px" or a bare "12" as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct reads "N%" with N in [0, 100].
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// Compute builds a Computed style from a merged property map (e.g. from Resolve).
// Unknown properties and unparsable values are ignored.
func Compute(props map[string]string) Computed {
	out := Default()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "accent", "accent-color":
			if c, ok := ParseHexColor(v); ok {
				out.Accent = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
