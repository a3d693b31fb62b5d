package coordconv

import (
	"github.com/rs/zerolog"
)

// MoveKey is the action key every controller move runs under, so a new move
// of the same node replaces the previous one.
const MoveKey = "moveNode"

const (
	tapMoveDuration    float32 = 0.3
	recenterDuration   float32 = 0.3
	markerSize                 = 50.0
	markerCornerRadius         = 12.0
)

var (
	markerColor    = Color{R: 0, G: 0.478, B: 1, A: 1} // blue
	referenceColor = Color{R: 1, G: 0.584, B: 0, A: 1} // orange
)

// Surface is the rendering side driven by a Controller. *Scene implements it.
type Surface interface {
	Origin() Vec2
	ViewToScene(p Vec2) Vec2
	Camera() *Camera
	AddShape(name string, style ShapeStyle, at Vec2) *Node
	MoveNode(target Movable, key string, to Vec2, duration float32, curve TimingCurve)
}

// DragState is the pan state of a Controller.
type DragState uint8

const (
	DragIdle DragState = iota
	DragActive
)

// String returns the state name used in logs.
func (d DragState) String() string {
	if d == DragActive {
		return "dragging"
	}
	return "idle"
}

// Controller owns the camera and the tap marker. It consumes interaction
// events and turns them into moves on its Surface: taps move the marker to the
// tapped scene point, pans drag the camera, and a double tap recenters it.
//
// A double tap during a pan ends the drag: the state returns to idle and the
// remaining deliveries of that pan are ignored.
type Controller struct {
	surface   Surface
	camera    *Camera
	marker    *Node
	reference *Node

	state      DragState
	dragOrigin Vec2

	sub Subscription
	log zerolog.Logger
}

// NewController sets up the scene: the camera and both nodes start at the
// scene origin.
func NewController(surface Surface) *Controller {
	origin := surface.Origin()
	style := ShapeStyle{
		Width:        markerSize,
		Height:       markerSize,
		CornerRadius: markerCornerRadius,
	}

	style.Fill = markerColor
	marker := surface.AddShape("marker", style, origin)
	style.Fill = referenceColor
	reference := surface.AddShape("reference", style, origin)

	cam := surface.Camera()
	cam.SetPosition(origin.X, origin.Y)

	return &Controller{
		surface:   surface,
		camera:    cam,
		marker:    marker,
		reference: reference,
		log:       zerolog.Nop(),
	}
}

// SetLogger sets the logger used to record handled events.
func (c *Controller) SetLogger(l zerolog.Logger) {
	c.log = l
}

// Attach subscribes the controller to stream, replacing any earlier
// subscription.
func (c *Controller) Attach(stream *EventStream) {
	c.sub.Cancel()
	c.sub = stream.Subscribe(c.Handle)
}

// Detach stops receiving events.
func (c *Controller) Detach() {
	c.sub.Cancel()
	c.sub = Subscription{}
}

// Handle applies one interaction event.
func (c *Controller) Handle(ev InteractionEvent) {
	switch e := ev.(type) {
	case TapEvent:
		c.handleTap(e)
	case DoubleTapEvent:
		c.handleDoubleTap()
	case PanEvent:
		c.handlePan(e)
	}
}

func (c *Controller) handleTap(e TapEvent) {
	p := c.surface.ViewToScene(e.Location)
	c.log.Debug().
		Float64("viewX", e.Location.X).Float64("viewY", e.Location.Y).
		Float64("sceneX", p.X).Float64("sceneY", p.Y).
		Msg("tap")
	c.surface.MoveNode(c.marker, MoveKey, p, tapMoveDuration, CurveEaseOut)
}

func (c *Controller) handleDoubleTap() {
	origin := c.surface.Origin()
	c.log.Debug().Stringer("state", c.state).Msg("double tap: recenter camera")
	c.endDrag()
	c.surface.MoveNode(c.camera, MoveKey, origin, recenterDuration, CurveEaseInEaseOut)
}

func (c *Controller) handlePan(e PanEvent) {
	switch e.Phase {
	case PanBegan:
		c.state = DragActive
		c.dragOrigin = c.camera.Position()
		c.log.Debug().Float64("originX", c.dragOrigin.X).Float64("originY", c.dragOrigin.Y).Msg("pan began")

	case PanChanged:
		if c.state != DragActive {
			return
		}
		// The scene is y-down, so x opposes the finger (content follows it)
		// while y moves with it (content moves against it).
		to := Vec2{
			X: c.dragOrigin.X - e.Translation.X,
			Y: c.dragOrigin.Y + e.Translation.Y,
		}
		c.surface.MoveNode(c.camera, MoveKey, to, 0, CurveLinear)

	case PanEnded, PanCancelled:
		if c.state != DragActive {
			return
		}
		c.log.Debug().Stringer("phase", e.Phase).Msg("pan finished")
		c.endDrag()
	}
}

func (c *Controller) endDrag() {
	c.state = DragIdle
	c.dragOrigin = Vec2{}
}

// State returns the current pan state.
func (c *Controller) State() DragState {
	return c.state
}

// DragOrigin returns the camera position captured when the current pan began,
// or the zero vector when idle.
func (c *Controller) DragOrigin() Vec2 {
	return c.dragOrigin
}

// CameraPosition returns the camera's current scene position.
func (c *Controller) CameraPosition() Vec2 {
	return c.camera.Position()
}

// Marker returns the tap marker node.
func (c *Controller) Marker() *Node {
	return c.marker
}

// Reference returns the static node left at the scene origin.
func (c *Controller) Reference() *Node {
	return c.reference
}
