// Package markup renders layout results as SVG, one <svg> element per
// page, for browser preview and printing. It consumes the exact same
// draw instructions as the PDF renderer, so preview and print cannot
// drift apart.
package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/larsOhne/beautiful-LEITZ/layout"
	"github.com/larsOhne/beautiful-LEITZ/renderer"
)

// Baseline offset from the line top as a fraction of the font size.
// SVG text is anchored at the baseline while TextBox.Y is the line top.
const baselineFactor = 0.8

// Renderer emits SVG markup.
type Renderer struct{}

var _ renderer.Renderer = (*Renderer)(nil)

// New creates a markup renderer.
func New() *Renderer { return &Renderer{} }

// Render emits one <svg> element per page, newline-separated. The output
// is deterministic: identical results yield identical bytes.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("render: result is nil")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("render: no pages to render")
	}
	var sb strings.Builder
	for i, page := range result.Pages {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writePage(&sb, page)
	}
	return []byte(sb.String()), nil
}

func writePage(sb *strings.Builder, page layout.Page) {
	fmt.Fprintf(sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="0 0 %s %s">`,
		num(page.Width), num(page.Height), num(page.Width), num(page.Height))
	sb.WriteByte('\n')
	for _, rc := range page.Rects {
		fmt.Fprintf(sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s"/>`,
			num(rc.X), num(rc.Y), num(rc.Width), num(rc.Height),
			fill(rc.FillColor), stroke(rc.StrokeColor, rc.StrokeWidth), num(rc.StrokeWidth))
		sb.WriteByte('\n')
	}
	for _, c := range page.Circles {
		fmt.Fprintf(sb, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"/>`,
			num(c.CX), num(c.CY), num(c.R),
			fill(c.FillColor), stroke(c.StrokeColor, c.StrokeWidth), num(c.StrokeWidth))
		sb.WriteByte('\n')
	}
	for _, ln := range page.Lines {
		fmt.Fprintf(sb, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`,
			num(ln.X1), num(ln.Y1), num(ln.X2), num(ln.Y2), hex(ln.Color), num(ln.Width))
		sb.WriteByte('\n')
	}
	for _, tb := range page.Texts {
		writeTextBox(sb, tb)
	}
	sb.WriteString("</svg>")
}

func writeTextBox(sb *strings.Builder, tb layout.TextBox) {
	anchor := "start"
	x := tb.X
	if tb.Align == "center" {
		anchor = "middle"
		x = tb.X + tb.Width/2
	}
	weight := "normal"
	if tb.Font == layout.FontBold {
		weight = "bold"
	}
	y := tb.Y + tb.FontSize*baselineFactor
	for _, line := range tb.Lines {
		if line.Content != "" {
			fmt.Fprintf(sb, `<text x="%s" y="%s" font-family="sans-serif" font-size="%s" font-weight="%s" fill="%s" text-anchor="%s">%s</text>`,
				num(x), num(y), num(tb.FontSize), weight, hex(tb.Color), anchor, escape(line.Content))
			sb.WriteByte('\n')
		}
		y += tb.LineHeight
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hex(c layout.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func fill(c *layout.Color) string {
	if c == nil {
		return "none"
	}
	return hex(*c)
}

func stroke(c layout.Color, width float64) string {
	if width <= 0 {
		return "none"
	}
	return hex(c)
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return escaper.Replace(s)
}
