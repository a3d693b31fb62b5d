package coordconv

import (
	"reflect"
	"testing"
)

const frameDT = 1.0 / 60

// newTestRouter returns a router with no pointer source and the events it
// publishes.
func newTestRouter() (*Router, *[]InteractionEvent) {
	stream := NewEventStream()
	events := &[]InteractionEvent{}
	stream.Subscribe(func(ev InteractionEvent) { *events = append(*events, ev) })
	return NewRouter(stream, nil, RouterConfig{}), events
}

// drain runs frames until the inject queue is empty and then enough extra
// frames for a pending tap to expire.
func drain(r *Router) {
	for r.Injected() > 0 {
		r.Update(frameDT)
	}
	for i := 0; i < 30; i++ {
		r.Update(frameDT)
	}
}

func TestRouterDefaults(t *testing.T) {
	r, _ := newTestRouter()
	cfg := r.Config()
	if cfg.DoubleTapWindow != 0.3 || cfg.DoubleTapSlop != 20 || cfg.PanSlop != 10 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestRouterSingleTapWaitsForDoubleTapWindow(t *testing.T) {
	r, events := newTestRouter()
	r.InjectTap(100, 200)

	r.Update(frameDT) // press
	r.Update(frameDT) // release
	if len(*events) != 0 {
		t.Fatalf("tap should be held for the double-tap window, got %v", *events)
	}
	if !r.PendingTap() {
		t.Error("expected a pending tap")
	}

	drain(r)
	want := []InteractionEvent{TapEvent{Location: Vec2{100, 200}}}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
}

func TestRouterDoubleTapSuppressesSingleTap(t *testing.T) {
	r, events := newTestRouter()
	r.InjectDoubleTap(50, 60)
	drain(r)

	want := []InteractionEvent{DoubleTapEvent{}}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
}

func TestRouterTapsFarApartAreSingleTaps(t *testing.T) {
	r, events := newTestRouter()
	r.InjectTap(10, 10)
	r.InjectTap(200, 200)
	drain(r)

	want := []InteractionEvent{
		TapEvent{Location: Vec2{10, 10}},
		TapEvent{Location: Vec2{200, 200}},
	}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
}

func TestRouterSlowSecondTapIsSingleTap(t *testing.T) {
	r, events := newTestRouter()
	r.InjectTap(10, 10)
	r.Update(frameDT)
	r.Update(frameDT)
	for i := 0; i < 30; i++ {
		r.Update(frameDT)
	}
	r.InjectTap(10, 10)
	drain(r)

	if len(*events) != 2 {
		t.Fatalf("events = %v, want two taps", *events)
	}
	for _, ev := range *events {
		if _, ok := ev.(TapEvent); !ok {
			t.Errorf("unexpected %T", ev)
		}
	}
}

func TestRouterSmallMovementStaysTap(t *testing.T) {
	r, events := newTestRouter()
	r.InjectPress(100, 100)
	r.InjectMove(104, 103)
	r.InjectRelease(104, 103)
	drain(r)

	want := []InteractionEvent{TapEvent{Location: Vec2{104, 103}}}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
}

func TestRouterPanPhasesAndTranslation(t *testing.T) {
	r, events := newTestRouter()
	r.InjectPan(100, 100, 40, 160, 5)
	drain(r)

	want := []InteractionEvent{
		PanEvent{Phase: PanBegan, Translation: Vec2{-15, 15}},
		PanEvent{Phase: PanChanged, Translation: Vec2{-30, 30}},
		PanEvent{Phase: PanChanged, Translation: Vec2{-45, 45}},
		PanEvent{Phase: PanChanged, Translation: Vec2{-60, 60}},
		PanEvent{Phase: PanEnded, Translation: Vec2{-60, 60}},
	}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
}

func TestRouterReleasePastSlopIsPan(t *testing.T) {
	r, events := newTestRouter()
	r.InjectPress(200, 400)
	r.InjectRelease(120, 320)
	drain(r)

	want := []InteractionEvent{
		PanEvent{Phase: PanBegan, Translation: Vec2{-80, -80}},
		PanEvent{Phase: PanChanged, Translation: Vec2{-80, -80}},
		PanEvent{Phase: PanEnded, Translation: Vec2{-80, -80}},
	}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
	if r.PendingTap() {
		t.Error("a release past the slop must not leave a pending tap")
	}
}

func TestRouterReleaseDeliversLastMovement(t *testing.T) {
	r, events := newTestRouter()
	r.InjectPan(200, 400, 120, 320, 3)
	drain(r)

	want := []InteractionEvent{
		PanEvent{Phase: PanBegan, Translation: Vec2{-40, -40}},
		PanEvent{Phase: PanChanged, Translation: Vec2{-80, -80}},
		PanEvent{Phase: PanEnded, Translation: Vec2{-80, -80}},
	}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
}

func TestRouterLongPanEndsOnReleasePoint(t *testing.T) {
	r, events := newTestRouter()
	r.InjectPan(200, 400, 120, 320, 30)
	drain(r)

	n := len(*events)
	if n < 3 {
		t.Fatalf("events = %v", *events)
	}
	want := Vec2{-80, -80}
	if last := (*events)[n-2]; last != (PanEvent{Phase: PanChanged, Translation: want}) {
		t.Errorf("last change = %v, want translation %v", last, want)
	}
	if end := (*events)[n-1]; end != (PanEvent{Phase: PanEnded, Translation: want}) {
		t.Errorf("end = %v", end)
	}
}

func TestRouterStationaryFramesDoNotEmitChanged(t *testing.T) {
	r, events := newTestRouter()
	r.InjectPress(0, 0)
	r.InjectMove(50, 0)
	r.InjectMove(50, 0)
	r.InjectMove(50, 0)
	r.InjectRelease(50, 0)
	drain(r)

	want := []InteractionEvent{
		PanEvent{Phase: PanBegan, Translation: Vec2{50, 0}},
		PanEvent{Phase: PanEnded, Translation: Vec2{50, 0}},
	}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
}

func TestRouterPendingTapFlushedBeforePan(t *testing.T) {
	r, events := newTestRouter()
	r.InjectTap(10, 10)
	r.InjectPan(10, 10, 100, 10, 3)
	drain(r)

	if len(*events) != 4 {
		t.Fatalf("events = %v, want tap + began + changed + ended", *events)
	}
	if (*events)[0] != (TapEvent{Location: Vec2{10, 10}}) {
		t.Errorf("first event = %v, want the held tap", (*events)[0])
	}
	if pe, ok := (*events)[1].(PanEvent); !ok || pe.Phase != PanBegan {
		t.Errorf("second event = %v, want PanBegan", (*events)[1])
	}
}

func TestRouterCancelDuringPan(t *testing.T) {
	r, events := newTestRouter()
	r.InjectPress(0, 0)
	r.InjectMove(0, 30)
	r.InjectCancel()
	r.InjectRelease(0, 30)
	drain(r)

	want := []InteractionEvent{
		PanEvent{Phase: PanBegan, Translation: Vec2{0, 30}},
		PanEvent{Phase: PanCancelled, Translation: Vec2{0, 30}},
	}
	if !reflect.DeepEqual(*events, want) {
		t.Errorf("events = %v, want %v", *events, want)
	}
	if r.Dragging() {
		t.Error("router should not be dragging after cancel")
	}
}

func TestRouterCancelBeforePanDropsPress(t *testing.T) {
	r, events := newTestRouter()
	r.InjectPress(0, 0)
	r.InjectCancel()
	r.InjectRelease(0, 0)
	drain(r)
	if len(*events) != 0 {
		t.Errorf("events = %v, want none", *events)
	}
}

type scriptedSource struct {
	samples []PointerSample
}

func (s *scriptedSource) Poll() PointerSample {
	if len(s.samples) == 0 {
		return PointerSample{}
	}
	p := s.samples[0]
	s.samples = s.samples[1:]
	return p
}

func TestRouterReadsSource(t *testing.T) {
	stream := NewEventStream()
	var events []InteractionEvent
	stream.Subscribe(func(ev InteractionEvent) { events = append(events, ev) })

	src := &scriptedSource{samples: []PointerSample{
		{X: 0, Y: 0, Pressed: true},
		{X: 0, Y: 20, Pressed: true},
		{X: 0, Y: 20},
	}}
	r := NewRouter(stream, src, RouterConfig{PanSlop: 5})
	for i := 0; i < 3; i++ {
		r.Update(frameDT)
	}
	if len(events) != 2 {
		t.Fatalf("events = %v, want began + ended", events)
	}
}

func TestRouterInjectedInputTakesPrecedence(t *testing.T) {
	stream := NewEventStream()
	src := &scriptedSource{samples: []PointerSample{{X: 1, Y: 1, Pressed: true}}}
	r := NewRouter(stream, src, RouterConfig{})
	r.InjectRelease(0, 0)
	r.Update(frameDT)
	if len(src.samples) != 1 {
		t.Error("source should not be polled while injected input is queued")
	}
}
