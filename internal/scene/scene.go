package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 40
	gridMajorAlpha = 90
	axisLineAlpha  = 200
	// minDistance/maxDistance bound the camera's distance from the origin when zooming.
	minDistance = 4
	maxDistance = 200
	zoomFactor  = 0.1
	// frameMargin multiplies the subject radius when framing so the cube never touches the edges.
	frameMargin = 3.2
)

// viewDir is the (unnormalised) direction from the target to the camera: a three-quarter view
// slightly above the lattice.
var viewDir = rl.NewVector3(0, 0.35, 1)

// Scene holds a 3D camera and draws the 3D world. Update handles zoom; Draw renders between
// BeginMode3D and EndMode3D, calling the content function after the grid.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	GridExtent  int
	distance    float32
}

// New returns a scene with a perspective camera looking at the origin from the front.
// Camera: fovy 45°, up (0,1,0). The grid is hidden by default.
func New() *Scene {
	s := &Scene{GridExtent: 20}
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.SetDistance(30)
	return s
}

// SetGridVisible sets whether the floor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetDistance moves the camera along its view direction to d units from the target (clamped).
func (s *Scene) SetDistance(d float32) {
	s.distance = min(max(d, minDistance), maxDistance)
	dir := rl.Vector3Normalize(viewDir)
	s.Camera.Position = rl.Vector3Add(s.Camera.Target, rl.Vector3Scale(dir, s.distance))
}

// Distance returns the camera's distance from its target.
func (s *Scene) Distance() float32 {
	return s.distance
}

// Frame places the camera so a subject of the given radius (world units) fits the view.
func (s *Scene) Frame(radius float32) {
	s.SetDistance(radius * frameMargin)
	s.GridExtent = int(radius) + gridMajorStep
}

// Update runs once per frame: the mouse wheel zooms unless the pointer is captured by the UI.
func (s *Scene) Update(pointerCaptured bool) {
	if pointerCaptured {
		return
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.SetDistance(s.distance * (1 - wheel*zoomFactor))
	}
}

// Draw renders the 3D scene: the grid when GridVisible is true, then content (if not nil).
// Call after ClearBackground and before the 2D overlay.
func (s *Scene) Draw(content func()) {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid(s.GridExtent)
	}
	if content != nil {
		content()
	}
	rl.EndMode3D()
}

// drawGrid draws a grid on the XZ plane below the lattice with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawGrid(extent int) {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)
	y := float32(-extent)

	var start, end rl.Vector3
	for i := -extent; i <= extent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), y, float32(-extent)
		end.X, end.Y, end.Z = float32(i), y, float32(extent)
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = float32(-extent), y, float32(i)
		end.X, end.Y, end.Z = float32(extent), y, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-extent), y, 0
	end.X, end.Y, end.Z = float32(extent), y, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, y, float32(-extent)
	end.X, end.Y, end.Z = 0, y, float32(extent)
	rl.DrawLine3D(start, end, axisZ)
}
