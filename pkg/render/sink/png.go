package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/chainviz/pkg/render/figure"
)

// supersample is the oversampling factor; the canvas is drawn this many
// times larger and scaled down with Catmull-Rom.
const supersample = 2

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale       float64
	transparent bool
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGTransparent skips the background fill.
func WithPNGTransparent() PNGOption {
	return func(r *pngRenderer) { r.transparent = true }
}

// RenderPNG rasterizes the figure natively; no external tools are needed.
func RenderPNG(f *figure.Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	if !(r.scale > 0) {
		return nil, fmt.Errorf("png: scale must be positive, got %v", r.scale)
	}

	outW := int(math.Ceil(f.Width * r.scale))
	outH := int(math.Ceil(f.Height * r.scale))
	s := r.scale * supersample

	dc := gg.NewContext(outW*supersample, outH*supersample)
	if !r.transparent {
		dc.SetColor(f.Background)
		dc.Clear()
	}
	dc.SetLineCapButt()

	for _, c := range f.Curves {
		p := c.Points
		dc.NewSubPath()
		dc.MoveTo(p[0].X*s, p[0].Y*s)
		switch len(p) {
		case 3:
			dc.QuadraticTo(p[1].X*s, p[1].Y*s, p[2].X*s, p[2].Y*s)
		case 4:
			dc.CubicTo(p[1].X*s, p[1].Y*s, p[2].X*s, p[2].Y*s, p[3].X*s, p[3].Y*s)
		default:
			continue
		}
		dc.SetColor(c.Stroke)
		dc.SetLineWidth(c.Width * s)
		dc.Stroke()
	}

	for _, a := range f.Arrows {
		dc.NewSubPath()
		for i, v := range a.Points {
			if i == 0 {
				dc.MoveTo(v.X*s, v.Y*s)
			} else {
				dc.LineTo(v.X*s, v.Y*s)
			}
		}
		dc.ClosePath()
		dc.SetColor(a.Fill)
		dc.Fill()
	}

	for _, c := range f.Circles {
		dc.DrawCircle(c.Center.X*s, c.Center.Y*s, c.Radius*s)
		dc.SetColor(c.Fill)
		dc.Fill()
	}

	faces := faceCache{}
	for _, t := range f.Texts {
		face, err := faces.get(t.Bold, t.Size*s)
		if err != nil {
			return nil, err
		}
		x, y := t.Pos.X*s, t.Pos.Y*s
		dc.Push()
		dc.SetFontFace(face)
		dc.SetColor(t.Color)
		if t.Rotation != 0 {
			dc.RotateAbout(gg.Radians(-t.Rotation), x, y)
		}
		dc.DrawStringAnchored(t.Content, x, y, hAnchor(t.HAlign), vAnchor(t.VAlign))
		dc.Pop()
	}

	out := image.NewRGBA(image.Rect(0, 0, outW, outH))
	draw.CatmullRom.Scale(out, out.Bounds(), dc.Image(), dc.Image().Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("png: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// hAnchor and vAnchor translate alignment into gg's anchor fractions, where
// ay = 1 hangs the text below y and ay = 0 stands it on y.
func hAnchor(a figure.HAlign) float64 {
	switch a {
	case figure.AlignCenter:
		return 0.5
	case figure.AlignRight:
		return 1
	default:
		return 0
	}
}

func vAnchor(a figure.VAlign) float64 {
	switch a {
	case figure.AlignTop:
		return 1
	case figure.AlignMiddle:
		return 0.5
	default:
		return 0
	}
}

// =============================================================================
// Fonts
// =============================================================================

var (
	fontsOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontsErr    error
)

type faceKey struct {
	bold bool
	size float64
}

func loadFonts() {
	regularFont, fontsErr = truetype.Parse(goregular.TTF)
	if fontsErr != nil {
		return
	}
	boldFont, fontsErr = truetype.Parse(gobold.TTF)
}

// faceCache holds the faces of one render. Faces keep glyph caches and are
// not shared between goroutines.
type faceCache map[faceKey]font.Face

// get returns a Go font face of the given pixel size.
func (c faceCache) get(bold bool, size float64) (font.Face, error) {
	fontsOnce.Do(loadFonts)
	if fontsErr != nil {
		return nil, fmt.Errorf("png: parse font: %w", fontsErr)
	}

	key := faceKey{bold, math.Round(size*4) / 4}
	if f, ok := c[key]; ok {
		return f, nil
	}
	ttf := regularFont
	if bold {
		ttf = boldFont
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: key.size, DPI: 72, Hinting: font.HintingNone})
	c[key] = f
	return f, nil
}
