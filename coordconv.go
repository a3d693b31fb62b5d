package coordconv

import (
	"image/color"
	"math"

	"github.com/tanema/gween/ease"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a non-premultiplied 8-bit color for ebiten draw calls.
func (c Color) toRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for positions, translations and sizes.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// TimingCurve selects the interpolation applied to a timed move.
type TimingCurve uint8

const (
	CurveLinear        TimingCurve = iota // constant speed
	CurveEaseIn                           // slow start
	CurveEaseOut                          // slow finish
	CurveEaseInEaseOut                    // slow start and finish
)

// String returns the curve name used in logs.
func (c TimingCurve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEaseIn:
		return "easeIn"
	case CurveEaseOut:
		return "easeOut"
	case CurveEaseInEaseOut:
		return "easeInEaseOut"
	default:
		return "unknown"
	}
}

// TweenFunc returns the gween easing function for this curve.
// Unknown values fall back to linear.
func (c TimingCurve) TweenFunc() ease.TweenFunc {
	switch c {
	case CurveEaseIn:
		return ease.InQuad
	case CurveEaseOut:
		return ease.OutQuad
	case CurveEaseInEaseOut:
		return ease.InOutQuad
	default:
		return ease.Linear
	}
}
