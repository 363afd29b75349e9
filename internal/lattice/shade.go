package lattice

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	shadeBase  = 230
	shadeRange = 50
)

// Shade maps depth to a grayscale channel value: 230 + (z/boxSize)*50.
// Points further along +z are brighter. The result is not clamped; inside the lattice it stays
// within [205, 255] and for any z in [-boxSize, boxSize] within [180, 280].
// boxSize == 0 yields the base value.
func Shade(z, boxSize float32) float32 {
	if boxSize == 0 {
		return shadeBase
	}
	return shadeBase + (z/boxSize)*shadeRange
}

// ShadeColor returns the opaque gray for Shade(z, boxSize). Channel values outside [0, 255]
// saturate, so anything above 255 is white.
func ShadeColor(z, boxSize float32) color.RGBA {
	v := float64(Shade(z, boxSize)) / 255
	r, g, b := colorful.Color{R: v, G: v, B: v}.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
