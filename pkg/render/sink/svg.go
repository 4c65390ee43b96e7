package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/chainviz/pkg/render/figure"
)

// FontFamily is the font stack written into SVG output.
const FontFamily = "DejaVu Sans, Helvetica, Arial, sans-serif"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily  string
	transparent bool
	title       string
}

func WithFontFamily(f string) SVGOption { return func(r *svgRenderer) { r.fontFamily = f } }
func WithTransparent() SVGOption        { return func(r *svgRenderer) { r.transparent = true } }
func WithTitle(t string) SVGOption      { return func(r *svgRenderer) { r.title = t } }

// RenderSVG encodes the figure as a standalone SVG document.
func RenderSVG(f *figure.Figure, opts ...SVGOption) []byte {
	r := svgRenderer{fontFamily: FontFamily}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, f.Width, f.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	if !r.transparent {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", f.Background.Hex())
	}

	buf.WriteString(`  <g class="edges">` + "\n")
	for _, c := range f.Curves {
		renderCurve(&buf, c)
	}
	for _, a := range f.Arrows {
		renderPolygon(&buf, a)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="nodes">` + "\n")
	for _, c := range f.Circles {
		fmt.Fprintf(&buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			c.Center.X, c.Center.Y, c.Radius, c.Fill.Hex())
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="labels">` + "\n")
	for _, t := range f.Texts {
		renderText(&buf, t, r.fontFamily)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderCurve(buf *bytes.Buffer, c figure.Curve) {
	p := c.Points
	var d string
	switch len(p) {
	case 3:
		d = fmt.Sprintf("M %.2f %.2f Q %.2f %.2f %.2f %.2f", p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
	case 4:
		d = fmt.Sprintf("M %.2f %.2f C %.2f %.2f %.2f %.2f %.2f %.2f",
			p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y, p[3].X, p[3].Y)
	default:
		return
	}
	fmt.Fprintf(buf, `    <path class="edge" d="%s" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		d, c.Stroke.Hex(), c.Width)
}

func renderPolygon(buf *bytes.Buffer, p figure.Polygon) {
	pts := make([]string, len(p.Points))
	for i, v := range p.Points {
		pts[i] = fmt.Sprintf("%.2f,%.2f", v.X, v.Y)
	}
	fmt.Fprintf(buf, `    <polygon class="arrowhead" points="%s" fill="%s"/>`+"\n",
		strings.Join(pts, " "), p.Fill.Hex())
}

var textAnchors = map[figure.HAlign]string{
	figure.AlignLeft:   "start",
	figure.AlignCenter: "middle",
	figure.AlignRight:  "end",
}

// baselineShift moves the alphabetic baseline so the glyph box lines up with
// the requested edge.
var baselineShift = map[figure.VAlign]string{
	figure.AlignBaseline: "0",
	figure.AlignTop:      "0.76em",
	figure.AlignMiddle:   "0.35em",
	figure.AlignBottom:   "-0.22em",
}

func renderText(buf *bytes.Buffer, t figure.Text, fontFamily string) {
	weight := "normal"
	if t.Bold {
		weight = "bold"
	}
	transform := ""
	if t.Rotation != 0 {
		// SVG rotates clockwise on a y-down canvas.
		transform = fmt.Sprintf(` transform="rotate(%.2f %.2f %.2f)"`, -t.Rotation, t.Pos.X, t.Pos.Y)
	}
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" dy="%s" font-family="%s" font-size="%.2f" font-weight="%s" text-anchor="%s" fill="%s"%s>%s</text>`+"\n",
		t.Pos.X, t.Pos.Y, baselineShift[t.VAlign], fontFamily, t.Size, weight,
		textAnchors[t.HAlign], t.Color.Hex(), transform, escapeXML(t.Content))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
