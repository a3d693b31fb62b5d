package coordconv

// Injected samples take precedence over the pointer source: Router.Update
// consumes one per frame until the queue is empty.

// InjectPress queues a pointer press at the given input-surface coordinates.
func (r *Router) InjectPress(x, y float64) {
	r.injectQueue = append(r.injectQueue, PointerSample{X: x, Y: y, Pressed: true})
}

// InjectMove queues a pointer move with the pointer held down. Use this
// between InjectPress and InjectRelease to simulate a pan.
func (r *Router) InjectMove(x, y float64) {
	r.injectQueue = append(r.injectQueue, PointerSample{X: x, Y: y, Pressed: true})
}

// InjectRelease queues a pointer release at the given coordinates.
func (r *Router) InjectRelease(x, y float64) {
	r.injectQueue = append(r.injectQueue, PointerSample{X: x, Y: y})
}

// InjectCancel queues a sample that aborts the gesture in progress.
func (r *Router) InjectCancel() {
	var at Vec2
	if n := len(r.injectQueue); n > 0 {
		at = Vec2{r.injectQueue[n-1].X, r.injectQueue[n-1].Y}
	}
	r.injectQueue = append(r.injectQueue, PointerSample{X: at.X, Y: at.Y, Cancelled: true})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames. The tap is published once the double-tap window
// expires.
func (r *Router) InjectTap(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDoubleTap queues two taps at the same point. Consumes four frames,
// which fits inside the double-tap window at any normal tick rate.
func (r *Router) InjectDoubleTap(x, y float64) {
	r.InjectTap(x, y)
	r.InjectTap(x, y)
}

// InjectPan queues a full pan: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes frames frames; the minimum is 2.
func (r *Router) InjectPan(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// Injected returns the number of queued synthetic samples.
func (r *Router) Injected() int {
	return len(r.injectQueue)
}

func (r *Router) popInjected() (PointerSample, bool) {
	if len(r.injectQueue) == 0 {
		return PointerSample{}, false
	}
	s := r.injectQueue[0]
	copy(r.injectQueue, r.injectQueue[1:])
	r.injectQueue = r.injectQueue[:len(r.injectQueue)-1]
	return s, true
}
