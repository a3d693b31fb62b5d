package coordconv

import (
	"github.com/rs/zerolog"
)

const (
	defaultDoubleTapWindow = 0.3  // seconds between taps
	defaultDoubleTapSlop   = 20.0 // pixels between the two taps
	defaultPanSlop         = 10.0 // pixels before a press becomes a pan
)

// RouterConfig tunes gesture recognition. Zero fields take the defaults.
type RouterConfig struct {
	// DoubleTapWindow is how long, in seconds, a released tap waits for a
	// second tap before it is reported as a single tap.
	DoubleTapWindow float64
	// DoubleTapSlop is the maximum distance between the two taps of a double tap.
	DoubleTapSlop float64
	// PanSlop is the distance a pressed pointer must travel to start a pan.
	PanSlop float64
}

func (c RouterConfig) withDefaults() RouterConfig {
	if c.DoubleTapWindow <= 0 {
		c.DoubleTapWindow = defaultDoubleTapWindow
	}
	if c.DoubleTapSlop <= 0 {
		c.DoubleTapSlop = defaultDoubleTapSlop
	}
	if c.PanSlop <= 0 {
		c.PanSlop = defaultPanSlop
	}
	return c
}

// PointerSample is the state of the primary pointer for one frame, in
// input-surface coordinates.
type PointerSample struct {
	X, Y    float64
	Pressed bool
	// Cancelled aborts any gesture in progress, e.g. when the window loses
	// focus mid-drag.
	Cancelled bool
}

// PointerSource supplies one PointerSample per frame.
type PointerSource interface {
	Poll() PointerSample
}

// Router turns pointer samples into tap, double-tap and pan events and
// publishes them on a stream. It holds no scene state.
//
// The single-tap recognizer requires the double-tap recognizer to fail: a
// completed tap is held until DoubleTapWindow elapses, and is dropped if a
// second tap turns it into a double tap.
type Router struct {
	stream *EventStream
	source PointerSource
	cfg    RouterConfig
	log    zerolog.Logger

	clock float64

	// press state
	down     bool
	start    Vec2
	last     Vec2
	panning  bool
	fromTap  bool // press began while a tap was pending
	pendTap  bool
	pendAt   Vec2
	pendTime float64

	injectQueue []PointerSample
}

// NewRouter creates a router publishing on stream. source may be nil when
// input is only injected.
func NewRouter(stream *EventStream, source PointerSource, cfg RouterConfig) *Router {
	return &Router{
		stream: stream,
		source: source,
		cfg:    cfg.withDefaults(),
		log:    zerolog.Nop(),
	}
}

// SetLogger sets the logger used to trace recognized gestures.
func (r *Router) SetLogger(l zerolog.Logger) {
	r.log = l
}

// Config returns the effective recognition settings.
func (r *Router) Config() RouterConfig {
	return r.cfg
}

// Update advances the router clock by dt seconds, consumes one pointer sample
// (an injected one if queued, otherwise from the source) and expires a pending
// single tap whose double-tap window has passed.
func (r *Router) Update(dt float64) {
	r.clock += dt
	if sample, ok := r.popInjected(); ok {
		r.Feed(sample)
	} else if r.source != nil {
		r.Feed(r.source.Poll())
	}
	r.expirePendingTap()
}

// Feed runs the recognizers on one sample at the current clock.
func (r *Router) Feed(s PointerSample) {
	pos := Vec2{s.X, s.Y}

	if s.Cancelled {
		r.Cancel()
		return
	}

	switch {
	case s.Pressed && !r.down:
		r.down = true
		r.start = pos
		r.last = pos
		r.panning = false
		r.fromTap = r.pendTap

	case s.Pressed && r.down:
		r.track(pos)

	case !s.Pressed && r.down:
		if r.track(pos) {
			// A pan that begins on the release still delivers its movement.
			r.emitPan(PanChanged, pos.Sub(r.start))
		}
		r.down = false
		if r.panning {
			r.panning = false
			r.emitPan(PanEnded, pos.Sub(r.start))
			return
		}
		r.completeTap(pos)
	}
}

// track applies movement of the held pointer. A pan already in progress gets
// PanChanged; a press that leaves the slop radius gets PanBegan. It reports
// whether the pan began on this sample.
func (r *Router) track(pos Vec2) bool {
	if pos == r.last {
		return false
	}
	r.last = pos
	t := pos.Sub(r.start)
	if r.panning {
		r.emitPan(PanChanged, t)
		return false
	}
	if t.Len() <= r.cfg.PanSlop {
		return false
	}
	// A pan is not a second tap: the held tap stands on its own and must be
	// reported before the pan begins.
	r.flushPendingTap()
	r.panning = true
	r.emitPan(PanBegan, t)
	return true
}

// Cancel aborts the gesture in progress. An active pan reports PanCancelled
// with its last translation; a press that had not become a pan is dropped.
func (r *Router) Cancel() {
	if !r.down {
		return
	}
	r.down = false
	if r.panning {
		r.panning = false
		r.emitPan(PanCancelled, r.last.Sub(r.start))
	}
}

// Dragging reports whether a pan is in progress.
func (r *Router) Dragging() bool {
	return r.panning
}

// PendingTap reports whether a tap is waiting on the double-tap window.
func (r *Router) PendingTap() bool {
	return r.pendTap
}

func (r *Router) completeTap(pos Vec2) {
	if r.pendTap && r.fromTap &&
		r.clock-r.pendTime <= r.cfg.DoubleTapWindow &&
		pos.Sub(r.pendAt).Len() <= r.cfg.DoubleTapSlop {
		r.pendTap = false
		r.log.Trace().Msg("double tap")
		r.stream.Publish(DoubleTapEvent{})
		return
	}
	r.flushPendingTap()
	r.pendTap = true
	r.pendAt = pos
	r.pendTime = r.clock
}

func (r *Router) expirePendingTap() {
	if r.pendTap && !r.down && r.clock-r.pendTime > r.cfg.DoubleTapWindow {
		r.flushPendingTap()
	}
}

func (r *Router) flushPendingTap() {
	if !r.pendTap {
		return
	}
	r.pendTap = false
	r.log.Trace().Float64("x", r.pendAt.X).Float64("y", r.pendAt.Y).Msg("tap")
	r.stream.Publish(TapEvent{Location: r.pendAt})
}

func (r *Router) emitPan(phase PanPhase, t Vec2) {
	r.log.Trace().Stringer("phase", phase).Float64("dx", t.X).Float64("dy", t.Y).Msg("pan")
	r.stream.Publish(PanEvent{Phase: phase, Translation: t})
}
