package formatter

import (
	"io"
	"strconv"
	"strings"
)

// NoneColor disables fill or stroke
const NoneColor = "none"

// Point is a position in SVG user units
type Point struct {
	X, Y float64
}

// RGB formats an opaque color
func RGB(r, g, b uint8) string {
	return "rgb(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b)) + ")"
}

// RGBA formats a color with opacity in [0,1]
func RGBA(r, g, b uint8, opacity float64) string {
	return "rgba(" + strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b)) + "," + formatNumber(opacity) + ")"
}

// PathProps are the presentation attributes shared by all shapes.
// Empty strings and a zero StrokeWidth are left out of the output.
type PathProps struct {
	Fill           string
	Stroke         string
	StrokeWidth    float64
	StrokeLineCap  string // butt|round|square
	StrokeLineJoin string // arcs|bevel|miter|miter-clip|round
}

// Object is an element of a Document
type Object interface {
	writeSVG(b *strings.Builder)
}

// Circle is an SVG <circle>
type Circle struct {
	Center Point
	Radius float64
	PathProps
}

// Polyline is an SVG <polyline>
type Polyline struct {
	Points []Point
	PathProps
}

// Text is an SVG <text>
type Text struct {
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
	PathProps
}

// Document is an ordered list of SVG objects
type Document struct {
	objects []Object
}

// Add appends an object; later objects are painted over earlier ones
func (d *Document) Add(obj Object) { d.objects = append(d.objects, obj) }

// Len returns the number of objects
func (d *Document) Len() int { return len(d.objects) }

// String renders the document
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.writeSVG(&b)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	return b.String()
}

// Render writes the document to w
func (d *Document) Render(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}

func (c Circle) writeSVG(b *strings.Builder) {
	b.WriteString("<circle cx=\"")
	b.WriteString(formatNumber(c.Center.X))
	b.WriteString("\" cy=\"")
	b.WriteString(formatNumber(c.Center.Y))
	b.WriteString("\" r=\"")
	b.WriteString(formatNumber(c.Radius))
	b.WriteString("\"")
	c.writeAttrs(b)
	b.WriteString("/>")
}

func (p Polyline) writeSVG(b *strings.Builder) {
	b.WriteString("<polyline points=\"")
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteString("\"")
	p.writeAttrs(b)
	b.WriteString("/>")
}

func (t Text) writeSVG(b *strings.Builder) {
	b.WriteString("<text")
	t.writeAttrs(b)
	writeAttr(b, "x", formatNumber(t.Position.X))
	writeAttr(b, "y", formatNumber(t.Position.Y))
	writeAttr(b, "dx", formatNumber(t.Offset.X))
	writeAttr(b, "dy", formatNumber(t.Offset.Y))
	writeAttr(b, "font-size", strconv.FormatUint(uint64(t.FontSize), 10))
	if t.FontFamily != "" {
		writeAttr(b, "font-family", xmlEscape(t.FontFamily))
	}
	if t.FontWeight != "" {
		writeAttr(b, "font-weight", xmlEscape(t.FontWeight))
	}
	b.WriteString(">")
	b.WriteString(xmlEscape(t.Data))
	b.WriteString("</text>")
}

func (p PathProps) writeAttrs(b *strings.Builder) {
	if p.Fill != "" {
		writeAttr(b, "fill", xmlEscape(p.Fill))
	}
	if p.Stroke != "" {
		writeAttr(b, "stroke", xmlEscape(p.Stroke))
	}
	if p.StrokeWidth != 0 {
		writeAttr(b, "stroke-width", formatNumber(p.StrokeWidth))
	}
	if p.StrokeLineCap != "" {
		writeAttr(b, "stroke-linecap", p.StrokeLineCap)
	}
	if p.StrokeLineJoin != "" {
		writeAttr(b, "stroke-linejoin", p.StrokeLineJoin)
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(value)
	b.WriteByte('"')
}

// formatNumber prints up to 6 significant digits
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
