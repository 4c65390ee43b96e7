package figure

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/chainviz/pkg/errors"
	"github.com/matzehuels/chainviz/pkg/markov"
)

func buildGraph(t *testing.T, P []float64, n int, opts markov.Options) *markov.Graph {
	t.Helper()
	g, err := markov.Build(mat.NewDense(n, n, P), opts)
	if err != nil {
		t.Fatalf("markov.Build() error: %v", err)
	}
	return g
}

func TestDrawCounts(t *testing.T) {
	g := buildGraph(t, []float64{0.9, 0.1, 0.3, 0.7}, 2, markov.DefaultOptions())

	f, err := Draw(g)
	if err != nil {
		t.Fatalf("Draw() error: %v", err)
	}
	if len(f.Circles) != 2 {
		t.Errorf("circles = %d, want 2", len(f.Circles))
	}
	if len(f.Curves) != 4 {
		t.Errorf("curves = %d, want 4", len(f.Curves))
	}
	if len(f.Arrows) != 4 {
		t.Errorf("arrows = %d, want 4", len(f.Arrows))
	}
	// two node labels, two arc labels, two loop labels
	if len(f.Texts) != 6 {
		t.Errorf("texts = %d, want 6", len(f.Texts))
	}

	var quads, cubics int
	for _, c := range f.Curves {
		if c.Quadratic() {
			quads++
		} else {
			cubics++
		}
	}
	if quads != 2 || cubics != 2 {
		t.Errorf("quadratic/cubic = %d/%d, want 2/2", quads, cubics)
	}
}

func TestDrawSize(t *testing.T) {
	g := buildGraph(t, []float64{0.5, 0.5, 0.5, 0.5}, 2, markov.DefaultOptions())
	f, err := Draw(g)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := f.Inches(); w != 4 || h != 3.5 {
		t.Errorf("Inches() = %v×%v, want 4×3.5", w, h)
	}

	opts := markov.DefaultOptions()
	opts.Positions = map[int]markov.Point{0: {X: -2}, 1: {X: 4, Y: 1}}
	g = buildGraph(t, []float64{0.5, 0.5, 0.5, 0.5}, 2, opts)
	f, err = Draw(g)
	if err != nil {
		t.Fatal(err)
	}
	if _, h := f.Inches(); math.Abs(h-(3.5+0.45*4)) > 1e-9 {
		t.Errorf("height = %v, want %v", h, 3.5+0.45*4)
	}
}

func TestDrawArcDirections(t *testing.T) {
	g := buildGraph(t, []float64{0, 0.4, 0.6, 0}, 2, markov.DefaultOptions())
	f, err := Draw(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Curves) != 2 {
		t.Fatalf("curves = %d, want 2", len(f.Curves))
	}

	nodeY := f.Circles[0].Center.Y
	forward, backward := f.Curves[0], f.Curves[1]
	// On screen y grows downward: the forward arc bends below the nodes,
	// the backward arc above.
	if forward.Points[1].Y <= nodeY {
		t.Errorf("forward control y = %v, want below %v", forward.Points[1].Y, nodeY)
	}
	if backward.Points[1].Y >= nodeY {
		t.Errorf("backward control y = %v, want above %v", backward.Points[1].Y, nodeY)
	}

	var top, bottom int
	for _, tx := range f.Texts {
		switch tx.VAlign {
		case AlignTop:
			top++
			if tx.Content != "0.40" {
				t.Errorf("top-aligned label = %q, want forward label 0.40", tx.Content)
			}
		case AlignBottom:
			bottom++
			if tx.Content != "0.60" {
				t.Errorf("bottom-aligned label = %q, want backward label 0.60", tx.Content)
			}
		}
		if tx.Rotation != 0 && !tx.Bold {
			t.Errorf("label %q rotation = %v, want 0 on a horizontal chord", tx.Content, tx.Rotation)
		}
	}
	if top != 1 || bottom != 1 {
		t.Errorf("top/bottom labels = %d/%d, want 1/1", top, bottom)
	}
}

func TestDrawArcStopsShortOfTarget(t *testing.T) {
	g := buildGraph(t, []float64{0, 1, 0, 0}, 2, markov.DefaultOptions())
	f, err := Draw(g)
	if err != nil {
		t.Fatal(err)
	}
	target := f.Circles[1].Center
	tip := f.Arrows[0].Points[0]
	want := NodeRadius() + Pt(TargetMargin)
	if got := tip.Sub(target).Len(); math.Abs(got-want) > 0.01 {
		t.Errorf("arrow tip distance = %v, want %v", got, want)
	}
	start := f.Curves[0].Points[0]
	if got := start.Sub(f.Circles[0].Center).Len(); math.Abs(got-NodeRadius()) > 0.01 {
		t.Errorf("arc start distance = %v, want %v", got, NodeRadius())
	}
}

func TestDrawSelfLoopDirection(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		up   bool
	}{
		{"origin loops up", 0, true},
		{"slightly below loops up", -0.05, true},
		{"below loops down", -1, false},
		{"above loops up", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := markov.DefaultOptions()
			opts.Positions = map[int]markov.Point{0: {Y: tt.y}}
			g := buildGraph(t, []float64{0.5}, 1, opts)
			f, err := Draw(g)
			if err != nil {
				t.Fatal(err)
			}
			center := f.Circles[0].Center
			ctrl := f.Curves[0].Points[1]
			if up := ctrl.Y < center.Y; up != tt.up {
				t.Errorf("loop control y = %v vs node %v, up = %v, want %v", ctrl.Y, center.Y, up, tt.up)
			}
			var label Text
			for _, tx := range f.Texts {
				if !tx.Bold {
					label = tx
				}
			}
			if label.Rotation != 90 || label.Content != "0.50" {
				t.Errorf("loop label = %+v, want 0.50 rotated 90", label)
			}
			if label.HAlign != AlignLeft || label.VAlign != AlignMiddle {
				t.Errorf("loop label align = %v/%v, want left/middle", label.HAlign, label.VAlign)
			}
		})
	}
}

func TestDrawErrors(t *testing.T) {
	if _, err := Draw(nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Draw(nil) error = %v, want INVALID_INPUT", err)
	}

	opts := markov.DefaultOptions()
	opts.NodeColor = "not-a-color"
	g := buildGraph(t, []float64{1}, 1, opts)
	if _, err := Draw(g); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("Draw(bad color) error = %v, want INVALID_COLOR", err)
	}
}

func TestBezierArrow(t *testing.T) {
	curve, head := BezierArrow(Vec{-0.1, 0.12}, Vec{0.1, 0.17}, 120, -120, 0.6)

	wantC1 := Vec{-0.1 - 0.3, 0.12 + 0.6*math.Sin(120*math.Pi/180)}
	wantC2 := Vec{0.1 + 0.3, 0.17 + 0.6*math.Sin(120*math.Pi/180)}
	if curve[1].Sub(wantC1).Len() > 1e-9 || curve[2].Sub(wantC2).Len() > 1e-9 {
		t.Errorf("controls = %v, %v, want %v, %v", curve[1], curve[2], wantC1, wantC2)
	}
	if head[0] != curve[3] {
		t.Errorf("head tip = %v, want curve end %v", head[0], curve[3])
	}
	base := head[1].Lerp(head[2], 0.5)
	if got := base.Sub(head[0]).Len(); math.Abs(got-0.13*0.6) > 1e-9 {
		t.Errorf("head length = %v, want %v", got, 0.13*0.6)
	}
	if got := head[1].Sub(head[2]).Len(); math.Abs(got-0.8*0.13*0.6) > 1e-9 {
		t.Errorf("head width = %v, want %v", got, 0.8*0.13*0.6)
	}
}

func TestUprightAngle(t *testing.T) {
	tests := []struct {
		d    Vec
		want float64
	}{
		{Vec{1, 0}, 0},
		{Vec{-1, 0}, 0},
		{Vec{1, 1}, 45},
		{Vec{-1, -1}, 45},
		{Vec{-1, 1}, -45},
		{Vec{0, 1}, 90},
		{Vec{0, -1}, 90},
	}
	for _, tt := range tests {
		if got := uprightAngle(tt.d); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("uprightAngle(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}
