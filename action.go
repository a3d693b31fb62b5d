package coordconv

import (
	"github.com/tanema/gween"
)

// MoveAction animates a Movable from its position at creation time to To over
// Duration seconds using Curve. Call Update(dt) each frame, or let a Scene do
// it via Scene.MoveNode. If the target is a disposed node, the action stops
// immediately without writing.
type MoveAction struct {
	Target   Movable
	Key      string
	To       Vec2
	Duration float32
	Curve    TimingCurve
	Done     bool

	tweenX *gween.Tween
	tweenY *gween.Tween
}

// NewMoveAction creates a move of target toward to. A duration of zero or less
// produces an action that completes on its first Update.
func NewMoveAction(target Movable, key string, to Vec2, duration float32, curve TimingCurve) *MoveAction {
	a := &MoveAction{Target: target, Key: key, To: to, Duration: duration, Curve: curve}
	if duration > 0 {
		from := target.Position()
		fn := curve.TweenFunc()
		a.tweenX = gween.New(float32(from.X), float32(to.X), duration, fn)
		a.tweenY = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	}
	return a
}

// Update advances the move by dt seconds and writes the interpolated position.
// The final write uses To exactly, not the float32 tween value.
func (a *MoveAction) Update(dt float32) {
	if a.Done {
		return
	}
	if n, ok := a.Target.(*Node); ok && n.IsDisposed() {
		a.Done = true
		return
	}
	if a.tweenX == nil {
		a.finish()
		return
	}

	x, doneX := a.tweenX.Update(dt)
	y, doneY := a.tweenY.Update(dt)
	if doneX && doneY {
		a.finish()
		return
	}
	a.Target.SetPosition(float64(x), float64(y))
}

func (a *MoveAction) finish() {
	a.Target.SetPosition(a.To.X, a.To.Y)
	a.Done = true
}

// actionKey identifies the move slot an action occupies. A new move under the
// same key replaces the running one.
type actionKey struct {
	target Movable
	key    string
}

// actionList holds running moves in start order.
type actionList struct {
	actions []*MoveAction
}

// run installs a, replacing any running move with the same target and key.
func (l *actionList) run(a *MoveAction) {
	k := actionKey{a.Target, a.Key}
	for i, cur := range l.actions {
		if (actionKey{cur.Target, cur.Key}) == k {
			l.actions[i] = a
			return
		}
	}
	l.actions = append(l.actions, a)
}

// cancel drops the running move for target/key without touching the target.
func (l *actionList) cancel(target Movable, key string) bool {
	k := actionKey{target, key}
	for i, cur := range l.actions {
		if (actionKey{cur.Target, cur.Key}) == k {
			copy(l.actions[i:], l.actions[i+1:])
			l.actions[len(l.actions)-1] = nil
			l.actions = l.actions[:len(l.actions)-1]
			return true
		}
	}
	return false
}

func (l *actionList) find(target Movable, key string) *MoveAction {
	k := actionKey{target, key}
	for _, cur := range l.actions {
		if (actionKey{cur.Target, cur.Key}) == k {
			return cur
		}
	}
	return nil
}

// update advances every running move and compacts finished ones away.
func (l *actionList) update(dt float32) {
	live := l.actions[:0]
	for _, a := range l.actions {
		a.Update(dt)
		if !a.Done {
			live = append(live, a)
		}
	}
	for i := len(live); i < len(l.actions); i++ {
		l.actions[i] = nil
	}
	l.actions = live
}

// isNilMovable reports whether m is nil or wraps a nil pointer.
func isNilMovable(m Movable) bool {
	switch t := m.(type) {
	case nil:
		return true
	case *Node:
		return t == nil
	case *Camera:
		return t == nil
	}
	return false
}
