package figure

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// Units
// =============================================================================

// DPI is the pixel density of a figure. Sizes given in points are converted
// with it.
const DPI = 100.0

// Pt converts typographic points to pixels.
func Pt(pt float64) float64 { return pt * DPI / 72 }

// =============================================================================
// Geometry
// =============================================================================

// Vec is a point or direction. Figures use pixel coordinates with y pointing
// down; data-space helpers such as BezierArrow use y pointing up.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(w Vec) Vec       { return Vec{v.X + w.X, v.Y + w.Y} }
func (v Vec) Sub(w Vec) Vec       { return Vec{v.X - w.X, v.Y - w.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// Lerp interpolates linearly between v (t=0) and w (t=1).
func (v Vec) Lerp(w Vec, t float64) Vec { return v.Add(w.Sub(v).Scale(t)) }

// Unit returns v scaled to length 1, or the zero vector.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// Perp returns v rotated by 90 degrees.
func (v Vec) Perp() Vec { return Vec{-v.Y, v.X} }

// =============================================================================
// Scene primitives
// =============================================================================

// HAlign positions text along its own baseline.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign positions text across its baseline.
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

// Circle is a filled disc.
type Circle struct {
	Center Vec
	Radius float64
	Fill   colorful.Color
}

// Curve is a stroked Bezier segment: three points for a quadratic, four for
// a cubic.
type Curve struct {
	Points []Vec
	Stroke colorful.Color
	Width  float64
}

// Quadratic reports whether c has a single control point.
func (c Curve) Quadratic() bool { return len(c.Points) == 3 }

// Polygon is a filled closed shape, used for arrowheads.
type Polygon struct {
	Points []Vec
	Fill   colorful.Color
}

// Text is a label anchored at Pos. Rotation is in degrees counterclockwise
// and turns the text about its anchor; alignment applies in the text's own
// frame.
type Text struct {
	Pos      Vec
	Content  string
	Size     float64 // pixels
	Bold     bool
	Color    colorful.Color
	Rotation float64
	HAlign   HAlign
	VAlign   VAlign
}

// Figure is a finished scene in pixel space. Sinks paint curves and arrows
// first, then circles, then text.
type Figure struct {
	Width  float64
	Height float64

	Background colorful.Color

	Curves  []Curve
	Arrows  []Polygon
	Circles []Circle
	Texts   []Text
}

// Inches returns the figure size in inches.
func (f *Figure) Inches() (w, h float64) {
	return f.Width / DPI, f.Height / DPI
}
