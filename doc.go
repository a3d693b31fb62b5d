// Package coordconv is a single-screen [Ebitengine] demo of converting pointer
// input into scene coordinates, with a draggable camera.
//
// Three gestures are recognized on the window: a single tap moves a marker to
// the tapped point in scene space, a pan drags the camera, and a double tap
// recenters the camera on the scene origin.
//
// # Data flow
//
//	PointerSource -> Router -> EventStream -> Controller -> Scene
//
// The [Router] turns raw pointer samples into [InteractionEvent] values
// ([TapEvent], [DoubleTapEvent], [PanEvent]) and publishes them on an
// [EventStream]. The [Controller] is the stream's subscriber: it converts
// tap locations with [Scene.ViewToScene] and issues moves through
// [Scene.MoveNode]. Nothing else mutates the camera or the marker.
//
// # Quick start
//
//	cfg := coordconv.DefaultConfig()
//	app := coordconv.NewApp(cfg, coordconv.NewEbitenSource(), zerolog.Nop())
//	if err := coordconv.Run(app, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Testing without a window
//
// Gestures can be injected with [Router.InjectTap], [Router.InjectDoubleTap]
// and [Router.InjectPan], or events published straight onto the stream. Each
// [App.Update] consumes one injected sample, so a test drives the app by
// calling Update with a fixed dt.
//
// [Ebitengine]: https://ebitengine.org
package coordconv
