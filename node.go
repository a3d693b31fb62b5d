package coordconv

// nodeIDCounter is a plain counter; the scene is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeShape                     // filled rounded rectangle centered on its position
)

// ShapeStyle describes how a shape node is drawn.
type ShapeStyle struct {
	Width, Height float64
	CornerRadius  float64
	Fill          Color
}

// Movable is anything a timed move can reposition: nodes and the camera.
type Movable interface {
	Position() Vec2
	SetPosition(x, y float64)
}

// Node is a scene element with a position in its parent's space.
type Node struct {
	ID   uint32
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	X, Y   float64
	ScaleX float64
	ScaleY float64

	worldTransform [6]float64
	transformDirty bool

	Visible bool
	Style   ShapeStyle

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.transformDirty = true
	n.worldTransform = identityTransform
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewShape creates a shape node drawn with the given style, centered on (X, Y).
func NewShape(name string, style ShapeStyle) *Node {
	n := &Node{Name: name, Type: NodeTypeShape, Style: style}
	nodeDefaults(n)
	return n
}

// Position returns the node's local position.
func (n *Node) Position() Vec2 {
	return Vec2{n.X, n.Y}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("coordconv: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("coordconv: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Dispose removes this node from its parent and marks it and all descendants
// as disposed. Running moves on a disposed node stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.Parent.removeChildByPtr(n)
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
