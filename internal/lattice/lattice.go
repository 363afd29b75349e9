package lattice

import "github.com/chewxy/math32"

// Point3D is a coordinate in the cube's local space, in pixels.
// X and Y run from 0 to the cube size; Z is centered, from -size/2 to size/2.
type Point3D struct {
	X, Y, Z float32
}

// Add returns p translated by q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p translated by -q.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p with every component multiplied by s.
func (p Point3D) Scale(s float32) Point3D {
	return Point3D{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// boundaryEpsilon absorbs float32 noise in span/step so an exact multiple does not produce
// an extra (duplicate) sample at the far boundary.
const boundaryEpsilon = 1e-4

// Step returns the distance between neighbouring samples on one axis.
// spacing below 1 is treated as 1 so the division is always defined.
func Step(size float32, spacing int) float32 {
	if spacing < 1 {
		spacing = 1
	}
	return size / float32(spacing)
}

// AxisSamples returns the evenly spaced coordinates from lower to upper inclusive.
// The sample count is ceil((upper-lower)/step)+1 and the last sample is pinned to upper,
// so the far boundary is always present exactly. A non-positive or non-finite span or step yields [lower].
func AxisSamples(lower, upper, step float32) []float32 {
	n := sampleCount(upper-lower, step)
	out := make([]float32, n)
	for i := range out {
		out[i] = lower + float32(i)*step
	}
	if n > 1 {
		out[n-1] = upper
	}
	return out
}

func sampleCount(span, step float32) int {
	if !positive(span) || !positive(step) {
		return 1
	}
	return int(math32.Ceil(span/step-boundaryEpsilon)) + 1
}

// positive reports whether v is a finite number above zero. NaN fails every comparison.
func positive(v float32) bool {
	return v > 0 && !math32.IsInf(v, 0)
}

// Count returns the number of points Generate(size, spacing) produces without allocating them.
func Count(size float32, spacing int) int {
	if !positive(size) {
		return 1
	}
	n := sampleCount(size, Step(size, spacing))
	return n * n * n
}

// Generate produces the full 3D grid for a cube of side size split into spacing divisions
// per axis. X and Y cover [0, size], Z covers [-size/2, size/2], both endpoints included.
// Points are ordered x-major, then y, then z. A size that is not a positive finite number yields the single point at the origin.
func Generate(size float32, spacing int) []Point3D {
	if !positive(size) {
		return []Point3D{{}}
	}
	step := Step(size, spacing)
	xs := AxisSamples(0, size, step)
	ys := AxisSamples(0, size, step)
	zs := AxisSamples(-size/2, size/2, step)

	points := make([]Point3D, 0, len(xs)*len(ys)*len(zs))
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				points = append(points, Point3D{X: x, Y: y, Z: z})
			}
		}
	}
	return points
}

// Center returns the middle of the cube of the given size, the pivot the container spins around.
func Center(size float32) Point3D {
	return Point3D{X: size / 2, Y: size / 2, Z: 0}
}
