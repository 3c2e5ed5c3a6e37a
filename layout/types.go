package layout

import "github.com/larsOhne/beautiful-LEITZ/label"

// This file defines the draw-instruction vocabulary shared by the layout
// engine and the renderers. A renderer only ever sees these types; the
// PDF and the markup output are two views of the same Result.

// Result holds the laid-out pages and document metadata. A Result is a
// pure function of (records, config): building the same inputs twice
// yields an identical value.
type Result struct {
	Pages []Page       `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// Page records the page size and the elements placed on it. Coordinates
// are millimeters with the origin at the top-left corner.
type Page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Labels []PlacedLabel `json:"labels"`

	Rects   []Rect    `json:"rects,omitempty"`
	Circles []Circle  `json:"circles,omitempty"`
	Lines   []Line    `json:"lines,omitempty"`
	Texts   []TextBox `json:"texts,omitempty"`
}

// PlacedLabel is one label's footprint on a page.
type PlacedLabel struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Format string       `json:"format"`
	Record label.Record `json:"record"`
}

// Color uses 0-255 RGB channels.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Font selects one of the two faces the renderers register.
type Font int

const (
	FontRegular Font = iota
	FontBold
)

// TextBox is a block of already line-broken text. FontSize and
// LineHeight are millimeters; Lines were produced by WrapText or by
// explicit newline splitting.
type TextBox struct {
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Width      float64    `json:"width"`
	Font       Font       `json:"font"`
	FontSize   float64    `json:"fontSize"`
	LineHeight float64    `json:"lineHeight"`
	Color      Color      `json:"color"`
	Align      string     `json:"align,omitempty"` // left (default) or center
	Lines      []TextLine `json:"lines"`
}

// TextLine is one laid-out line of a TextBox.
type TextLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
}

// Line is a stroked segment.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"` // mm
}

// Rect is an axis-aligned rectangle. A nil FillColor means no fill; a
// non-positive StrokeWidth means no stroke.
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"` // mm
	FillColor   *Color  `json:"fillColor,omitempty"`
}

// Circle mirrors Rect for circular marks.
type Circle struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"` // mm
	FillColor   *Color  `json:"fillColor,omitempty"`
}

// DocumentMeta holds PDF document information.
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}
