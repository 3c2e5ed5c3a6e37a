package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/larsOhne/beautiful-LEITZ/layout"
)

func sampleResult() *layout.Result {
	fill := layout.Color{R: 0x2E, G: 0x7D, B: 0x32}
	return &layout.Result{
		Pages: []layout.Page{{
			Width:  210,
			Height: 297,
			Rects: []layout.Rect{
				{X: 10, Y: 10, Width: 38, Height: 285, StrokeColor: layout.Black, StrokeWidth: 0.35},
				{X: 10, Y: 10, Width: 38, Height: 30, FillColor: &fill},
			},
			Circles: []layout.Circle{
				{CX: 29, CY: 285, R: 3, StrokeColor: layout.Black, StrokeWidth: 0.35},
			},
			Lines: []layout.Line{
				{X1: 21.5, Y1: 270, X2: 36.5, Y2: 270, Color: layout.Color{R: 204, G: 204, B: 204}, Width: 0.18},
			},
			Texts: []layout.TextBox{{
				X: 13, Y: 13, Width: 32,
				Font: layout.FontBold, FontSize: 4.9, LineHeight: 5.6,
				Color: layout.White,
				Lines: []layout.TextLine{{Content: "Bills & Taxes", Width: 20}},
			}},
		}},
	}
}

func TestRenderProducesSVGPages(t *testing.T) {
	out, err := New().Render(sampleResult())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	svg := string(out)
	if !strings.HasPrefix(svg, "<svg ") {
		t.Fatalf("output must start with an svg element, got %q", svg)
	}
	for _, want := range []string{
		`viewBox="0 0 210 297"`,
		`<rect x="10" y="10" width="38" height="30" fill="#2e7d32" stroke="none"`,
		`<circle cx="29" cy="285" r="3"`,
		`<line x1="21.5"`,
		`font-weight="bold"`,
	} {
		if !strings.Contains(svg, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestRenderEscapesText(t *testing.T) {
	out, err := New().Render(sampleResult())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(string(out), "Bills &amp; Taxes") {
		t.Fatalf("text content not escaped: %s", out)
	}
}

func TestRenderIsByteIdentical(t *testing.T) {
	r := New()
	first, err := r.Render(sampleResult())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	second, err := r.Render(sampleResult())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("two renders of the same result differ")
	}
}

func TestRenderRejectsEmptyResult(t *testing.T) {
	if _, err := New().Render(nil); err == nil {
		t.Fatalf("expected error for nil result")
	}
	if _, err := New().Render(&layout.Result{}); err == nil {
		t.Fatalf("expected error for a result without pages")
	}
}
