package tui

import (
	"image/color"
	"sort"

	"dotcube/internal/lattice"
	"dotcube/internal/params"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2

// fill is the fraction of the shorter screen side the cube's diagonal may use.
const fill = 0.9

var wireColor = color.RGBA{R: 140, G: 140, B: 140, A: 255}

// Cell is one glyph to paint.
type Cell struct {
	X, Y  int
	Depth float32
	Glyph rune
	Color color.RGBA
}

// view maps rotated lattice space onto a w×h character grid.
type view struct {
	center lattice.Point3D
	rot    mgl32.Mat4
	scale  float32
	cx, cy float32
}

func newView(size float32, rot mgl32.Mat4, w, h int) view {
	diag := max(size, 1) * math32.Sqrt(3)
	sx := float32(w) / diag
	sy := float32(h) * cellAspect / diag
	return view{
		center: lattice.Center(size),
		rot:    rot,
		scale:  min(sx, sy) * fill,
		cx:     float32(w) / 2,
		cy:     float32(h) / 2,
	}
}

// project rotates p around the cube center and returns screen column, row and depth.
// Lattice y grows downward, so it is flipped before rotating.
func (v view) project(p lattice.Point3D) (int, int, float32) {
	d := p.Sub(v.center)
	r := mgl32.TransformCoordinate(mgl32.Vec3{d.X, -d.Y, d.Z}, v.rot)
	x := v.cx + r.X()*v.scale
	y := v.cy - r.Y()*v.scale/cellAspect
	return int(math32.Floor(x + 0.5)), int(math32.Floor(y + 0.5)), r.Z()
}

// Glyph picks a dot character for the facet radius setting.
func Glyph(radius float32) rune {
	switch {
	case radius < 8:
		return '·'
	case radius < 20:
		return '•'
	default:
		return '●'
	}
}

// Project returns one cell per lattice point that lands on the w×h grid, ordered back to front
// so nearer points are painted last. Color comes from the point's own depth in the cube.
func Project(points []lattice.Point3D, size, radius float32, rot mgl32.Mat4, w, h int) []Cell {
	v := newView(size, rot, w, h)
	glyph := Glyph(radius)
	cells := make([]Cell, 0, len(points))
	for _, p := range points {
		x, y, depth := v.project(p)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		cells = append(cells, Cell{X: x, Y: y, Depth: depth, Glyph: glyph, Color: lattice.ShadeColor(p.Z, size)})
	}
	SortBackToFront(cells)
	return cells
}

// ProjectWireframe rasterizes the six face outlines of a cube of the given size.
func ProjectWireframe(size float32, rot mgl32.Mat4, w, h int) []Cell {
	v := newView(size, rot, w, h)
	var cells []Cell
	for _, f := range lattice.Wireframe(size) {
		corners := f.Corners()
		for i := range corners {
			x0, y0, z0 := v.project(corners[i])
			x1, y1, z1 := v.project(corners[(i+1)%len(corners)])
			cells = appendLine(cells, x0, y0, x1, y1, z0, z1, w, h)
		}
	}
	return cells
}

// Cells returns everything to paint for one frame: the lattice points and, when the wireframe
// is on, the face outlines, merged and ordered back to front so near edges cover far dots and
// near dots cover far edges. At equal depth an edge is painted over a dot.
func Cells(points []lattice.Point3D, p params.RenderParameters, rot mgl32.Mat4, w, h int) []Cell {
	cells := Project(points, p.Size, p.Radius, rot, w, h)
	if p.Wireframe {
		cells = append(cells, ProjectWireframe(p.Size, rot, w, h)...)
		SortBackToFront(cells)
	}
	return cells
}

// appendLine adds the cells of a Bresenham line clipped to the grid. Depth runs linearly from
// z0 to z1 so a long edge sorts correctly against the points it passes.
func appendLine(cells []Cell, x0, y0, x1, y1 int, z0, z1 float32, w, h int) []Cell {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	steps := max(dx, -dy)
	i := 0
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			depth := z0
			if steps > 0 {
				depth += (z1 - z0) * float32(i) / float32(steps)
			}
			cells = append(cells, Cell{X: x0, Y: y0, Depth: depth, Glyph: '.', Color: wireColor})
		}
		if x0 == x1 && y0 == y1 {
			return cells
		}
		i++
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// SortBackToFront orders cells by increasing depth, keeping input order for ties.
func SortBackToFront(cells []Cell) {
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].Depth < cells[j].Depth })
}
