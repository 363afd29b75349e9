package lattice

// Cache memoizes the lattice for the most recent (size, spacing) pair.
// The renderer asks for points every frame; only a change of size or spacing recomputes them.
// A Cache is not safe for concurrent use; it belongs to the frame loop.
type Cache struct {
	size       float32
	spacing    int
	points     []Point3D
	valid      bool
	recomputes int
}

// Points returns the lattice for (size, spacing), regenerating it only when either changed
// since the previous call. The returned slice is shared and must not be modified.
func (c *Cache) Points(size float32, spacing int) []Point3D {
	if c.valid && c.size == size && c.spacing == spacing {
		return c.points
	}
	c.size, c.spacing = size, spacing
	c.points = Generate(size, spacing)
	c.valid = true
	c.recomputes++
	return c.points
}

// Recomputes reports how many times the lattice has been generated.
func (c *Cache) Recomputes() int {
	return c.recomputes
}

// Invalidate forces the next Points call to regenerate.
func (c *Cache) Invalidate() {
	c.valid = false
}
