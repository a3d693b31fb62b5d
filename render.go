package coordconv

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawTree paints visible shape nodes in tree order. view maps scene space to
// the target image.
func drawTree(dst *ebiten.Image, n *Node, view [6]float64) {
	if !n.Visible || n.disposed {
		return
	}
	if n.Type == NodeTypeShape {
		drawShape(dst, n, multiplyAffine(view, n.worldTransform))
	}
	for _, child := range n.children {
		drawTree(dst, child, view)
	}
}

// drawShape fills a rounded rectangle centered on the node origin. m has no
// rotation or skew, so the rectangle stays axis-aligned.
func drawShape(dst *ebiten.Image, n *Node, m [6]float64) {
	st := n.Style
	w := st.Width * math.Abs(m[0])
	h := st.Height * math.Abs(m[3])
	if w <= 0 || h <= 0 {
		return
	}
	cx, cy := transformPoint(m, 0, 0)
	r := math.Min(st.CornerRadius*math.Abs(m[0]), math.Min(w, h)/2)
	fillRoundedRect(dst, cx-w/2, cy-h/2, w, h, r, st.Fill)
}

// fillRoundedRect draws a rounded rectangle as two crossing rects plus four
// corner discs.
func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float64, c Color) {
	clr := c.toRGBA()
	if r <= 0 {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, true)
		return
	}
	vector.DrawFilledRect(dst, float32(x+r), float32(y), float32(w-2*r), float32(h), clr, true)
	vector.DrawFilledRect(dst, float32(x), float32(y+r), float32(r), float32(h-2*r), clr, true)
	vector.DrawFilledRect(dst, float32(x+w-r), float32(y+r), float32(r), float32(h-2*r), clr, true)

	corners := [4][2]float64{
		{x + r, y + r},
		{x + w - r, y + r},
		{x + r, y + h - r},
		{x + w - r, y + h - r},
	}
	for _, p := range corners {
		vector.DrawFilledCircle(dst, float32(p[0]), float32(p[1]), float32(r), clr, true)
	}
}
