package coordconv

import "fmt"

// PanPhase is the stage of a pan gesture carried by a PanEvent.
type PanPhase uint8

const (
	PanBegan     PanPhase = iota + 1 // movement crossed the pan slop
	PanChanged                       // pointer moved while panning
	PanEnded                         // pointer released while panning
	PanCancelled                     // pan aborted before release
)

// String returns the phase name used in logs.
func (p PanPhase) String() string {
	switch p {
	case PanBegan:
		return "began"
	case PanChanged:
		return "changed"
	case PanEnded:
		return "ended"
	case PanCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("PanPhase(%d)", uint8(p))
	}
}

// InteractionEvent is one normalized gesture. The concrete type is always one
// of TapEvent, DoubleTapEvent or PanEvent.
type InteractionEvent interface {
	interactionEvent()
}

// TapEvent is a single tap. Location is in input-surface coordinates.
type TapEvent struct {
	Location Vec2
}

// DoubleTapEvent is a tap with a tap count of two.
type DoubleTapEvent struct{}

// PanEvent reports one pan delivery. Translation is measured from the point
// where the pan's pointer was pressed, in input-surface units.
type PanEvent struct {
	Phase       PanPhase
	Translation Vec2
}

func (TapEvent) interactionEvent()       {}
func (DoubleTapEvent) interactionEvent() {}
func (PanEvent) interactionEvent()       {}
