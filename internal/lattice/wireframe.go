package lattice

// FramePadding is added to the cube size so the outlines sit just outside the outermost points.
const FramePadding = 10

// FaceAxis is the rotation that turns an upright square (in the XY plane) into a cube face.
type FaceAxis int

const (
	// FaceNone keeps the square in the XY plane (front and back).
	FaceNone FaceAxis = iota
	// FaceX rotates the square 90 degrees about X, giving a horizontal face (top and bottom).
	FaceX
	// FaceY rotates the square 90 degrees about Y, giving a side face (left and right).
	FaceY
)

// Face is one square outline of the wireframe overlay.
type Face struct {
	Name   string
	Center Point3D
	Axis   FaceAxis
	Side   float32
}

// Corners returns the four corners of the face in drawing order, forming a closed loop.
func (f Face) Corners() [4]Point3D {
	h := f.Side / 2
	square := [4]Point3D{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}}
	var out [4]Point3D
	for i, p := range square {
		switch f.Axis {
		case FaceX:
			p = Point3D{X: p.X, Y: 0, Z: p.Y}
		case FaceY:
			p = Point3D{X: 0, Y: p.Y, Z: -p.X}
		}
		out[i] = p.Add(f.Center)
	}
	return out
}

// Wireframe returns the six faces bounding a cube of the given size, in the same local space as
// Generate. It depends only on size.
func Wireframe(size float32) []Face {
	c := Center(size)
	side := size + FramePadding
	half := size / 2
	return []Face{
		{Name: "front", Center: Point3D{X: c.X, Y: c.Y, Z: half}, Axis: FaceNone, Side: side},
		{Name: "back", Center: Point3D{X: c.X, Y: c.Y, Z: -half}, Axis: FaceNone, Side: side},
		{Name: "top", Center: Point3D{X: c.X, Y: 0, Z: 0}, Axis: FaceX, Side: side},
		{Name: "bottom", Center: Point3D{X: c.X, Y: size, Z: 0}, Axis: FaceX, Side: side},
		{Name: "left", Center: Point3D{X: 0, Y: c.Y, Z: 0}, Axis: FaceY, Side: side},
		{Name: "right", Center: Point3D{X: size, Y: c.Y, Z: 0}, Axis: FaceY, Side: side},
	}
}
