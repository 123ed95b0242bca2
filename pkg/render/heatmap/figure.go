package heatmap

import (
	"bytes"
	"fmt"
)

// Figure is the drawing surface a heatmap is rendered onto. It accumulates
// SVG elements and serializes them with SVG. A figure can be handed to
// [Render] via [OnFigure] to compose several plots, or drawn on directly
// after rendering.
//
// Coordinates are in pixels with the origin at the top-left corner.
type Figure struct {
	width, height float64
	background    string
	defs          bytes.Buffer
	body          bytes.Buffer
	gradientSeq   int
}

// NewFigure creates an empty figure of the given pixel dimensions with a
// white background.
func NewFigure(width, height float64) *Figure {
	return &Figure{width: width, height: height, background: "#ffffff"}
}

// Width returns the figure width in pixels.
func (f *Figure) Width() float64 { return f.width }

// Height returns the figure height in pixels.
func (f *Figure) Height() float64 { return f.height }

// Rect draws a filled rectangle. An empty stroke omits the outline.
func (f *Figure) Rect(x, y, w, h float64, fill, stroke string, strokeWidth float64) {
	fmt.Fprintf(&f.body, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"`,
		x, y, w, h, fill)
	if stroke != "" {
		fmt.Fprintf(&f.body, ` stroke="%s" stroke-width="%.2f"`, stroke, strokeWidth)
	}
	f.body.WriteString(" />\n")
}

// Polyline draws an open polygonal line through points, given as (x, y)
// pairs.
func (f *Figure) Polyline(points [][2]float64, stroke string, strokeWidth float64) {
	f.body.WriteString(`  <polyline points="`)
	for i, p := range points {
		if i > 0 {
			f.body.WriteByte(' ')
		}
		fmt.Fprintf(&f.body, "%.2f,%.2f", p[0], p[1])
	}
	fmt.Fprintf(&f.body, `" fill="none" stroke="%s" stroke-width="%.2f" stroke-linejoin="miter" />`+"\n",
		stroke, strokeWidth)
}

// TextStyle controls how Text renders a string. Zero fields fall back to
// the figure defaults: size 12, middle anchor, dark gray fill, monospace.
type TextStyle struct {
	Size   float64 // font size in pixels
	Anchor string  // SVG text-anchor: start, middle, or end
	Fill   string  // text color
	Rotate float64 // clockwise rotation in degrees about the anchor point
}

// Text draws s anchored at (x, y). The y coordinate is the text baseline.
func (f *Figure) Text(x, y float64, s string, style TextStyle) {
	if style.Size == 0 {
		style.Size = 12
	}
	if style.Anchor == "" {
		style.Anchor = "middle"
	}
	if style.Fill == "" {
		style.Fill = textColor
	}
	fmt.Fprintf(&f.body, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" text-anchor="%s" fill="%s"`,
		x, y, fontFamily, style.Size, style.Anchor, style.Fill)
	if style.Rotate != 0 {
		fmt.Fprintf(&f.body, ` transform="rotate(%.1f %.2f %.2f)"`, style.Rotate, x, y)
	}
	fmt.Fprintf(&f.body, ">%s</text>\n", escapeText(s))
}

// GradientStop is one color stop of a linear gradient, at a fractional
// Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  string
}

// VerticalGradient registers a top-to-bottom linear gradient in the
// figure's defs and returns its element id for use in fill references.
func (f *Figure) VerticalGradient(stops []GradientStop) string {
	f.gradientSeq++
	id := fmt.Sprintf("gradient-%d", f.gradientSeq)
	fmt.Fprintf(&f.defs, `    <linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+"\n", id)
	for _, s := range stops {
		fmt.Fprintf(&f.defs, `      <stop offset="%.0f%%" stop-color="%s" />`+"\n", s.Offset*100, s.Color)
	}
	f.defs.WriteString("    </linearGradient>\n")
	return id
}

// SVG serializes the figure as a standalone SVG document.
func (f *Figure) SVG() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.width, f.height, f.width, f.height)
	if f.defs.Len() > 0 {
		buf.WriteString("  <defs>\n")
		buf.Write(f.defs.Bytes())
		buf.WriteString("  </defs>\n")
	}
	fmt.Fprintf(&buf, `  <rect width="%.2f" height="%.2f" fill="%s" />`+"\n",
		f.width, f.height, f.background)
	buf.Write(f.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// escapeText replaces the XML-significant characters in text content.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
