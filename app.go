package coordconv

import (
	"github.com/rs/zerolog"
)

// App wires the pieces of the demo together:
//
//	PointerSource -> Router -> EventStream -> Controller -> Scene
//
// Everything runs on the caller's goroutine, one Update per frame.
type App struct {
	scene      *Scene
	stream     *EventStream
	router     *Router
	controller *Controller

	runner *TestRunner
	paused bool
}

// NewApp builds a scene sized to cfg, a router reading source (nil for
// injected input only) and a controller subscribed to the router's stream.
func NewApp(cfg RunConfig, source PointerSource, log zerolog.Logger) *App {
	scene := NewScene(float64(cfg.Width), float64(cfg.Height))
	scene.ClearColor = Color{R: 0.1, G: 0.1, B: 0.12, A: 1}
	if cfg.ScreenshotDir != "" {
		scene.ScreenshotDir = cfg.ScreenshotDir
	}
	scene.SetLogger(log)

	stream := NewEventStream()
	router := NewRouter(stream, source, cfg.Router())
	router.SetLogger(log)

	ctrl := NewController(scene)
	ctrl.SetLogger(log)
	ctrl.Attach(stream)

	return &App{
		scene:      scene,
		stream:     stream,
		router:     router,
		controller: ctrl,
	}
}

// Scene returns the rendered scene.
func (a *App) Scene() *Scene { return a.scene }

// Stream returns the event stream the router publishes on.
func (a *App) Stream() *EventStream { return a.stream }

// Router returns the input router.
func (a *App) Router() *Router { return a.router }

// Controller returns the scene controller.
func (a *App) Controller() *Controller { return a.controller }

// SetTestRunner attaches a scripted input runner. Its step runs at the start
// of every Update, before input is read.
func (a *App) SetTestRunner(r *TestRunner) {
	a.runner = r
}

// TestRunner returns the attached runner, or nil.
func (a *App) TestRunner() *TestRunner {
	return a.runner
}

// SetPaused stops or resumes input handling and moves.
func (a *App) SetPaused(paused bool) {
	a.paused = paused
}

// Paused reports whether the app is paused.
func (a *App) Paused() bool {
	return a.paused
}

// Update advances one frame of dt seconds.
func (a *App) Update(dt float64) {
	if a.paused {
		return
	}
	if a.runner != nil {
		a.runner.step(a)
	}
	a.router.Update(dt)
	a.scene.Update(float32(dt))
}
