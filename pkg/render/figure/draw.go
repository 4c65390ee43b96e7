package figure

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chainviz/pkg/errors"
	"github.com/matzehuels/chainviz/pkg/markov"
	"github.com/matzehuels/chainviz/pkg/render"
)

// =============================================================================
// Style constants
// =============================================================================

const (
	// NodeMarkerArea is the node marker size in square points.
	NodeMarkerArea = 2000.0

	NodeFontSize = 24.0 // pt
	EdgeFontSize = 14.0 // pt
	EdgeWidth    = 2.5  // pt

	// Curvature is the rad of the arc connecting two distinct states.
	Curvature = 0.3

	// TargetMargin is the extra gap left in front of the target node.
	TargetMargin = 15.0 // pt

	arrowSize       = 15.0 // pt, scales the head dimensions below
	arrowHeadLength = 0.5
	arrowHeadWidth  = 0.2

	// SelfLoopRadius is the tangent radius of self-loops in data units.
	SelfLoopRadius = 0.6

	widthPerState = 2.0  // in
	baseHeight    = 3.5  // in
	heightPerX    = 0.45 // in

	padX = 0.6
	padY = 0.9
)

// EdgeColor is the stroke of every edge and the color of edge labels.
const EdgeColor = "xkcd:gray"

// NodeRadius is the node circle radius in pixels.
func NodeRadius() float64 { return Pt(math.Sqrt(NodeMarkerArea) / 2) }

// =============================================================================
// Options
// =============================================================================

// Option configures Draw.
type Option func(*drawer)

type drawer struct {
	edgeColor string
	curvature float64
	bg        colorful.Color
}

// WithEdgeColor overrides EdgeColor.
func WithEdgeColor(c string) Option { return func(d *drawer) { d.edgeColor = c } }

// WithCurvature overrides Curvature.
func WithCurvature(rad float64) Option { return func(d *drawer) { d.curvature = rad } }

// WithBackground sets the figure background.
func WithBackground(c colorful.Color) Option { return func(d *drawer) { d.bg = c } }

// =============================================================================
// Draw
// =============================================================================

// Size returns the figure size in inches for g: two inches per state wide,
// and 3.5 inches plus 0.45 per unit of the largest supplied |x| high.
func Size(g *markov.Graph) (w, h float64) {
	return widthPerState * float64(g.N()), baseHeight + heightPerX*g.MaxAbsX()
}

// Draw lays out g as a scene. Nodes become circles with centered bold white
// labels, distinct-state edges quadratic arcs with arrowheads and labels at
// the arc midpoint, and self-loops cubic arcs above the node (below it when
// the node sits under y = -0.1) with a vertical label.
func Draw(g *markov.Graph, opts ...Option) (*Figure, error) {
	if g == nil || g.N() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph has no states")
	}

	d := drawer{
		edgeColor: EdgeColor,
		curvature: Curvature,
		bg:        colorful.Color{R: 1, G: 1, B: 1},
	}
	for _, opt := range opts {
		opt(&d)
	}

	edgeColor, err := render.ParseColor(d.edgeColor)
	if err != nil {
		return nil, err
	}

	wIn, hIn := Size(g)
	f := &Figure{Width: wIn * DPI, Height: hIn * DPI, Background: d.bg}
	tr := newTransform(g, f.Width, f.Height)

	for _, e := range g.Edges {
		switch e.Kind {
		case markov.Self:
			d.selfLoop(f, tr, g, e, edgeColor)
		default:
			d.arc(f, tr, g, e, edgeColor)
		}
	}

	for _, n := range g.Nodes {
		fill, err := render.ParseColor(n.Color)
		if err != nil {
			return nil, err
		}
		center := tr.apply(n.Pos)
		f.Circles = append(f.Circles, Circle{Center: center, Radius: NodeRadius(), Fill: fill})
		if n.Label == "" {
			continue
		}
		f.Texts = append(f.Texts, Text{
			Pos:     center,
			Content: n.Label,
			Size:    Pt(NodeFontSize),
			Bold:    true,
			Color:   colorful.Color{R: 1, G: 1, B: 1},
			HAlign:  AlignCenter,
			VAlign:  AlignMiddle,
		})
	}
	return f, nil
}

func (d *drawer) arc(f *Figure, tr transform, g *markov.Graph, e markov.Edge, color colorful.Color) {
	a := tr.apply(g.Nodes[e.From].Pos)
	b := tr.apply(g.Nodes[e.To].Pos)
	full := [3]Vec{a, Arc3(a, b, d.curvature), b}

	headLen := Pt(arrowSize * arrowHeadLength)
	headHalf := Pt(arrowSize * arrowHeadWidth)
	target := NodeRadius() + Pt(TargetMargin)

	if line, ok := shrinkQuad(full, NodeRadius(), target+headLen); ok {
		f.Curves = append(f.Curves, Curve{Points: line[:], Stroke: color, Width: Pt(EdgeWidth)})
		tipT := leaveRadius(full, target, true)
		tip := quadAt(full, tipT)
		dir := tip.Sub(line[2]).Unit()
		if dir == (Vec{}) {
			dir = tip.Sub(line[1]).Unit()
		}
		head := arrowhead(tip, dir, headLen, headHalf)
		f.Arrows = append(f.Arrows, Polygon{Points: head[:], Fill: color})
	}

	label := g.ForwardLabels[markov.Key{From: e.From, To: e.To}]
	valign := AlignTop
	if e.Kind == markov.Backward {
		label = g.BackwardLabels[markov.Key{From: e.From, To: e.To}]
		valign = AlignBottom
	}
	if label == "" {
		return
	}
	// Screen y grows downward; flip it for the counterclockwise angle.
	chord := b.Sub(a)
	f.Texts = append(f.Texts, Text{
		Pos:      quadAt(full, 0.5),
		Content:  label,
		Size:     Pt(EdgeFontSize),
		Color:    color,
		Rotation: uprightAngle(Vec{chord.X, -chord.Y}),
		HAlign:   AlignCenter,
		VAlign:   valign,
	})
}

func (d *drawer) selfLoop(f *Figure, tr transform, g *markov.Graph, e markov.Edge, color colorful.Color) {
	p := g.Nodes[e.From].Pos
	x, y := p.X, p.Y

	dir := 1.0
	if y+0.1 < 0 {
		dir = -1
	}
	angleA, angleB := 120.0, -120.0
	if dir < 0 {
		angleA, angleB = 60, -60
	}

	curve, head := BezierArrow(
		Vec{x - 0.1, y + dir*0.12},
		Vec{x + 0.1, y + dir*0.17},
		angleA, angleB, SelfLoopRadius*dir,
	)

	pts := make([]Vec, len(curve))
	for i, c := range curve {
		pts[i] = tr.applyVec(c)
	}
	f.Curves = append(f.Curves, Curve{Points: pts, Stroke: color, Width: Pt(EdgeWidth)})

	tri := make([]Vec, len(head))
	for i, c := range head {
		tri[i] = tr.applyVec(c)
	}
	f.Arrows = append(f.Arrows, Polygon{Points: tri, Fill: color})

	label := g.SelfLabels[markov.Key{From: e.From, To: e.To}]
	if label == "" {
		return
	}
	offset := 0.2
	if dir < 0 {
		offset = -0.45
	}
	// Vertical text reading upward from the anchor and centred on x. Alignment
	// is in the unrotated frame, so that is left along the text and middle
	// across it, the same box matplotlib gets from a rotated center/baseline.
	f.Texts = append(f.Texts, Text{
		Pos:      tr.applyVec(Vec{x, y + offset}),
		Content:  label,
		Size:     Pt(EdgeFontSize),
		Color:    color,
		Rotation: 90,
		HAlign:   AlignLeft,
		VAlign:   AlignMiddle,
	})
}

// =============================================================================
// Data to pixel mapping
// =============================================================================

// transform maps y-up data coordinates onto the y-down pixel grid. Axes are
// scaled independently to fill the figure.
type transform struct {
	x0, y1 float64 // data left and top
	sx, sy float64 // pixels per data unit
}

func newTransform(g *markov.Graph, width, height float64) transform {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, n := range g.Nodes {
		xmin, xmax = math.Min(xmin, n.Pos.X), math.Max(xmax, n.Pos.X)
		ymin, ymax = math.Min(ymin, n.Pos.Y), math.Max(ymax, n.Pos.Y)
	}
	xmin, xmax = xmin-padX, xmax+padX
	ymin, ymax = ymin-padY, ymax+padY

	return transform{
		x0: xmin,
		y1: ymax,
		sx: width / (xmax - xmin),
		sy: height / (ymax - ymin),
	}
}

func (t transform) apply(p markov.Point) Vec {
	return t.applyVec(Vec{p.X, p.Y})
}

func (t transform) applyVec(p Vec) Vec {
	return Vec{(p.X - t.x0) * t.sx, (t.y1 - p.Y) * t.sy}
}
