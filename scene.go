package coordconv

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Scene is the top-level object that owns the node tree, the camera, running
// moves and the screenshot queue. Its size is the input surface's size and its
// origin is the center of its bounds.
type Scene struct {
	root   *Node
	camera *Camera
	size   Vec2

	// ClearColor fills the target before nodes are drawn. A zero alpha skips
	// the fill.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir string

	actions         actionList
	screenshotQueue []string
	log             zerolog.Logger
}

// NewScene creates a scene of the given size with a root container and a
// camera whose viewport covers the whole surface. The camera starts at the
// scene origin, so view and scene coordinates coincide until it moves.
func NewScene(width, height float64) *Scene {
	root := NewContainer("root")
	cam := NewCamera(Rect{Width: width, Height: height})
	s := &Scene{
		root:          root,
		camera:        cam,
		size:          Vec2{width, height},
		ScreenshotDir: "screenshots",
		log:           zerolog.Nop(),
	}
	origin := s.Origin()
	cam.SetPosition(origin.X, origin.Y)
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Size returns the scene size in scene units.
func (s *Scene) Size() Vec2 {
	return s.size
}

// Origin returns the center of the scene bounds.
func (s *Scene) Origin() Vec2 {
	return Vec2{s.size.X / 2, s.size.Y / 2}
}

// Resize changes the scene size and the camera viewport. The camera keeps its
// scene position.
func (s *Scene) Resize(width, height float64) {
	s.size = Vec2{width, height}
	s.camera.Viewport = Rect{Width: width, Height: height}
	s.camera.MarkDirty()
}

// ViewToScene converts an input-surface point to scene coordinates using the
// current camera position and zoom.
func (s *Scene) ViewToScene(p Vec2) Vec2 {
	x, y := s.camera.ScreenToWorld(p.X, p.Y)
	return Vec2{x, y}
}

// SceneToView converts a scene point to input-surface coordinates.
func (s *Scene) SceneToView(p Vec2) Vec2 {
	x, y := s.camera.WorldToScreen(p.X, p.Y)
	return Vec2{x, y}
}

// AddShape creates a shape node at the given scene position and adds it to
// the root.
func (s *Scene) AddShape(name string, style ShapeStyle, at Vec2) *Node {
	n := NewShape(name, style)
	n.SetPosition(at.X, at.Y)
	s.root.AddChild(n)
	return n
}

// MoveNode moves target to the scene point over duration seconds with the
// given curve. Any move already running under the same target and key is
// replaced. A duration of zero or less relocates the target immediately.
// A nil target is a no-op.
func (s *Scene) MoveNode(target Movable, key string, to Vec2, duration float32, curve TimingCurve) {
	if isNilMovable(target) {
		return
	}
	if duration <= 0 {
		s.actions.cancel(target, key)
		target.SetPosition(to.X, to.Y)
		return
	}
	s.actions.run(NewMoveAction(target, key, to, duration, curve))
}

// RunningMove returns the move currently running for target under key, or nil.
func (s *Scene) RunningMove(target Movable, key string) *MoveAction {
	return s.actions.find(target, key)
}

// CancelMove stops the move running for target under key, leaving the target
// where it is. It reports whether a move was running.
func (s *Scene) CancelMove(target Movable, key string) bool {
	return s.actions.cancel(target, key)
}

// Update advances running moves by dt seconds and refreshes world transforms.
func (s *Scene) Update(dt float32) {
	s.actions.update(dt)
	updateWorldTransform(s.root, identityTransform, false)
}

// Draw renders the scene through its camera and flushes queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, false)
	view := s.camera.computeViewMatrix()
	drawTree(screen, s.root, view)
	s.flushScreenshots(screen)
}

// SetLogger attaches a logger used by the scene and the components wired to it.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.log = l
}

// Logger returns the scene logger.
func (s *Scene) Logger() zerolog.Logger {
	return s.log
}
