// Package boxdots draws the lattice as depth-shaded dots inside a rotating container, plus the
// optional wireframe overlay. Coordinates stay in lattice pixels; the rlgl matrix stack maps them
// to world units, flips y (lattice y grows downward) and applies the spin.
package boxdots

import (
	"image/color"

	"dotcube/internal/lattice"
	"dotcube/internal/params"
	"dotcube/internal/spin"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// DefaultPixelsPerUnit maps lattice pixels to world units (200px cube = 10 units).
	DefaultPixelsPerUnit = 20
	// facetThickness is the depth (in pixels) of each disc so it renders as a filled circle.
	facetThickness = 0.05
	facetSides     = 12
)

var wireColor = rl.NewColor(200, 200, 200, 160)

// facetNormals are the normals of the three discs making up one dot: the upright disc (in the
// XY plane), the disc turned 90° about X (XZ plane) and the one turned 90° about Y (YZ plane).
var facetNormals = [3]lattice.Point3D{
	{Z: facetThickness},
	{Y: facetThickness},
	{X: facetThickness},
}

// Renderer draws one lattice per frame.
type Renderer struct {
	PixelsPerUnit float32
}

// New returns a renderer with the default pixel scale.
func New() *Renderer {
	return &Renderer{PixelsPerUnit: DefaultPixelsPerUnit}
}

// Extent returns the half-diagonal of the cube in world units, for framing the camera.
func (r *Renderer) Extent(p params.RenderParameters) float32 {
	return p.Size * 0.8660254 / r.scale()
}

func (r *Renderer) scale() float32 {
	if r.PixelsPerUnit <= 0 {
		return DefaultPixelsPerUnit
	}
	return r.PixelsPerUnit
}

// Draw renders points (the lattice for p) and, if enabled, the wireframe, rotated by rot around
// the cube's center. Must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(p params.RenderParameters, points []lattice.Point3D, rot []spin.AxisAngle) {
	s := 1 / r.scale()
	c := lattice.Center(p.Size)

	rl.DisableBackfaceCulling()
	rl.PushMatrix()
	rl.Scalef(s, -s, s)
	for _, a := range rot {
		rl.Rotatef(a.Degrees, a.Axis.X(), a.Axis.Y(), a.Axis.Z())
	}
	rl.Translatef(-c.X, -c.Y, -c.Z)

	radius := FacetDiameter(p.Radius) / 2
	for _, pt := range points {
		drawDot(pt, radius, toRL(lattice.ShadeColor(pt.Z, p.Size)))
	}
	if p.Wireframe {
		drawWireframe(p.Size)
	}

	rl.PopMatrix()
	rl.EnableBackfaceCulling()
}

// FacetDiameter is the diameter of each disc for a radius setting.
func FacetDiameter(radius float32) float32 {
	return radius / 2
}

// drawDot draws the three perpendicular discs centered on pt.
func drawDot(pt lattice.Point3D, radius float32, col rl.Color) {
	for _, n := range facetNormals {
		half := n.Scale(0.5)
		start := pt.Sub(half)
		end := pt.Add(half)
		rl.DrawCylinderEx(vec(start), vec(end), radius, radius, facetSides, col)
	}
}

func drawWireframe(size float32) {
	for _, f := range lattice.Wireframe(size) {
		corners := f.Corners()
		for i := range corners {
			rl.DrawLine3D(vec(corners[i]), vec(corners[(i+1)%len(corners)]), wireColor)
		}
	}
}

func vec(p lattice.Point3D) rl.Vector3 {
	return rl.NewVector3(p.X, p.Y, p.Z)
}

func toRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
