package coordconv

import "math"

// Camera is the view into the scene. The scene point (X, Y) is drawn at the
// center of Viewport.
type Camera struct {
	// X and Y are the scene-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the input-surface rectangle this camera renders into.
	Viewport Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a camera at the scene origin (0, 0) with zoom 1.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Position returns the camera's scene-space position.
func (c *Camera) Position() Vec2 {
	return Vec2{c.X, c.Y}
}

// SetPosition moves the camera immediately.
func (c *Camera) SetPosition(x, y float64) {
	if c.X == x && c.Y == y {
		return
	}
	c.X = x
	c.Y = y
	c.dirty = true
}

// SetZoom changes the zoom factor. Non-positive values are ignored.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 || z == c.Zoom {
		return
	}
	c.Zoom = z
	c.dirty = true
}

// MarkDirty forces a recomputation of the view matrix. Call it after writing
// X, Y, Zoom or Viewport directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	center := c.Viewport.Center()
	z := c.Zoom
	c.viewMatrix = [6]float64{z, 0, 0, z, center.X - z*c.X, center.Y - z*c.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts scene coordinates to input-surface coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts input-surface coordinates to scene coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the scene-space rectangle currently inside the viewport.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vb)

	minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
	minY, maxY := math.Min(y0, y1), math.Max(y0, y1)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
