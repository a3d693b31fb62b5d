package coordconv

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSource polls the left mouse button and the first active touch. A touch
// takes over the pointer while it is down; when it lifts, the release is
// reported at its last position.
type EbitenSource struct {
	touchIDs  []ebiten.TouchID
	touch     ebiten.TouchID
	touchDown bool
	lastX     float64
	lastY     float64
}

// NewEbitenSource creates a source reading ebiten's global input state.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll implements PointerSource.
func (e *EbitenSource) Poll() PointerSample {
	if !ebiten.IsFocused() {
		return PointerSample{X: e.lastX, Y: e.lastY, Cancelled: true}
	}
	if s, ok := e.pollTouch(); ok {
		return s
	}
	mx, my := ebiten.CursorPosition()
	e.lastX, e.lastY = float64(mx), float64(my)
	return PointerSample{
		X:       e.lastX,
		Y:       e.lastY,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// pollTouch tracks one touch ID across frames. ok is false when no touch is
// or was active this frame, so the mouse should be read instead.
func (e *EbitenSource) pollTouch() (PointerSample, bool) {
	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])

	if e.touchDown {
		for _, id := range e.touchIDs {
			if id == e.touch {
				tx, ty := ebiten.TouchPosition(id)
				e.lastX, e.lastY = float64(tx), float64(ty)
				return PointerSample{X: e.lastX, Y: e.lastY, Pressed: true}, true
			}
		}
		e.touchDown = false
		return PointerSample{X: e.lastX, Y: e.lastY}, true
	}

	if len(e.touchIDs) == 0 {
		return PointerSample{}, false
	}
	e.touch = e.touchIDs[0]
	e.touchDown = true
	tx, ty := ebiten.TouchPosition(e.touch)
	e.lastX, e.lastY = float64(tx), float64(ty)
	return PointerSample{X: e.lastX, Y: e.lastY, Pressed: true}, true
}
