package coordconv

import (
	"math"
	"testing"
)

func TestMoveActionReachesExactTarget(t *testing.T) {
	node := NewContainer("pos")
	node.SetPosition(10, 20)

	a := NewMoveAction(node, "k", Vec2{100.1, 200.3}, 1.0, CurveLinear)
	a.Update(0.5)
	if a.Done {
		t.Fatal("should not be done halfway")
	}
	if math.Abs(node.X-55.05) > 0.01 {
		t.Errorf("X halfway = %f, want ~55.05", node.X)
	}
	a.Update(0.5)

	if !a.Done {
		t.Fatal("expected Done after full duration")
	}
	if node.X != 100.1 || node.Y != 200.3 {
		t.Errorf("position = (%v,%v), want exactly (100.1,200.3)", node.X, node.Y)
	}
}

func TestMoveActionZeroDurationCompletesOnFirstUpdate(t *testing.T) {
	node := NewContainer("n")
	a := NewMoveAction(node, "k", Vec2{5, 6}, 0, CurveLinear)
	a.Update(0)
	if !a.Done || node.X != 5 || node.Y != 6 {
		t.Errorf("done=%v pos=(%v,%v), want done at (5,6)", a.Done, node.X, node.Y)
	}
}

func TestMoveActionStopsOnDisposedNode(t *testing.T) {
	node := NewContainer("n")
	a := NewMoveAction(node, "k", Vec2{100, 100}, 1, CurveLinear)
	node.Dispose()
	a.Update(0.5)
	if !a.Done {
		t.Error("expected Done for disposed target")
	}
	if node.X != 0 || node.Y != 0 {
		t.Errorf("disposed node was written: (%v,%v)", node.X, node.Y)
	}
}

func TestMoveActionMovesCamera(t *testing.T) {
	cam := NewCamera(Rect{Width: 100, Height: 100})
	a := NewMoveAction(cam, "k", Vec2{30, -40}, 0.2, CurveEaseInEaseOut)
	for i := 0; i < 5; i++ {
		a.Update(0.05)
	}
	if !a.Done || cam.X != 30 || cam.Y != -40 {
		t.Errorf("done=%v cam=(%v,%v), want done at (30,-40)", a.Done, cam.X, cam.Y)
	}
}

func TestEaseOutLeadsLinear(t *testing.T) {
	lin := NewContainer("lin")
	out := NewContainer("out")
	al := NewMoveAction(lin, "k", Vec2{100, 0}, 1, CurveLinear)
	ao := NewMoveAction(out, "k", Vec2{100, 0}, 1, CurveEaseOut)
	al.Update(0.25)
	ao.Update(0.25)
	if out.X <= lin.X {
		t.Errorf("ease-out X = %f should lead linear X = %f early on", out.X, lin.X)
	}
}

func TestActionListReplacesSameKey(t *testing.T) {
	node := NewContainer("n")
	var l actionList

	first := NewMoveAction(node, "move", Vec2{100, 0}, 1, CurveLinear)
	second := NewMoveAction(node, "move", Vec2{0, 100}, 1, CurveLinear)
	l.run(first)
	l.run(second)

	if len(l.actions) != 1 {
		t.Fatalf("actions = %d, want 1", len(l.actions))
	}
	if l.find(node, "move") != second {
		t.Error("second move should replace the first")
	}
}

func TestActionListKeepsDifferentKeysAndTargets(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	var l actionList
	l.run(NewMoveAction(a, "move", Vec2{1, 1}, 1, CurveLinear))
	l.run(NewMoveAction(a, "other", Vec2{1, 1}, 1, CurveLinear))
	l.run(NewMoveAction(b, "move", Vec2{1, 1}, 1, CurveLinear))
	if len(l.actions) != 3 {
		t.Errorf("actions = %d, want 3", len(l.actions))
	}
}

func TestActionListUpdateDropsFinished(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	var l actionList
	l.run(NewMoveAction(a, "move", Vec2{1, 1}, 0.1, CurveLinear))
	l.run(NewMoveAction(b, "move", Vec2{1, 1}, 1, CurveLinear))

	l.update(0.2)

	if len(l.actions) != 1 || l.find(b, "move") == nil {
		t.Errorf("expected only b's move to remain, got %d actions", len(l.actions))
	}
}

func TestActionListCancel(t *testing.T) {
	n := NewContainer("n")
	var l actionList
	l.run(NewMoveAction(n, "move", Vec2{1, 1}, 1, CurveLinear))
	if !l.cancel(n, "move") {
		t.Error("cancel should report a running move")
	}
	if l.cancel(n, "move") {
		t.Error("second cancel should report nothing running")
	}
}

func TestIsNilMovable(t *testing.T) {
	var node *Node
	var cam *Camera
	if !isNilMovable(nil) || !isNilMovable(node) || !isNilMovable(cam) {
		t.Error("nil movables not detected")
	}
	if isNilMovable(NewContainer("n")) {
		t.Error("live node reported nil")
	}
}
