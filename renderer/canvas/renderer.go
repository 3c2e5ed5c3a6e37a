// Package canvasrenderer renders layout results to PDF via
// github.com/tdewolff/canvas and doubles as the text measurer for the
// layout stage, so wrapping decisions and the printed output use the
// same font metrics.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/larsOhne/beautiful-LEITZ/config"
	"github.com/larsOhne/beautiful-LEITZ/fonts"
	"github.com/larsOhne/beautiful-LEITZ/layout"
	"github.com/larsOhne/beautiful-LEITZ/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas.
type Renderer struct {
	regularPath string
	boldPath    string

	// Font registration happens once on first use and is a no-op after
	// that; the mutex keeps concurrent render calls safe.
	fontMu   sync.Mutex
	families map[layout.Font]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// New creates a renderer using the font paths configured in cfg (the
// embedded Go fonts serve as fallback).
func New(cfg *config.Config) *Renderer {
	r := &Renderer{}
	if cfg != nil {
		r.regularPath = cfg.Style.FontPathRegular
		r.boldPath = cfg.Style.FontPathBold
	}
	return r
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("render: result is nil")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("render: no pages to render")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, as the layout emits

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// TextWidth implements layout.Measurer. The width is millimeters for a
// face of sizePt points. When fonts cannot be loaded at all the width is
// estimated, so layout still terminates with sane line breaks.
func (r *Renderer) TextWidth(text string, font layout.Font, sizePt float64) float64 {
	face, err := r.face(font, sizePt, layout.Black)
	if err != nil {
		return float64(utf8.RuneCountInString(text)) * sizePt * 0.5 * layout.PtToMm
	}
	return face.TextWidth(text)
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	// Shapes first as background, then text.
	drawRects(ctx, page.Rects)
	drawCircles(ctx, page.Circles)
	drawLines(ctx, page.Lines)
	for _, tb := range page.Texts {
		if err := r.drawTextBox(ctx, tb); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	face, err := r.face(tb.Font, tb.FontSize*layout.MmToPt, tb.Color)
	if err != nil {
		return err
	}

	textAlign := canvas.Left
	anchorX := tb.X
	if tb.Align == "center" {
		textAlign = canvas.Center
		anchorX = tb.X + tb.Width/2
	}

	metrics := face.Metrics()
	cursorY := tb.Y
	for _, line := range tb.Lines {
		if line.Content != "" {
			textLine := canvas.NewTextLine(face, line.Content, textAlign)
			ctx.DrawText(anchorX, cursorY+metrics.Ascent, textLine)
		}
		cursorY += tb.LineHeight
	}
	return nil
}

func drawRects(ctx *canvas.Context, rects []layout.Rect) {
	for _, rc := range rects {
		setShapeStyle(ctx, rc.FillColor, rc.StrokeColor, rc.StrokeWidth)
		ctx.DrawPath(rc.X, rc.Y, canvas.Rectangle(rc.Width, rc.Height))
	}
}

func drawCircles(ctx *canvas.Context, circles []layout.Circle) {
	for _, c := range circles {
		setShapeStyle(ctx, c.FillColor, c.StrokeColor, c.StrokeWidth)
		ctx.DrawPath(c.CX-c.R, c.CY-c.R, canvas.Circle(c.R))
	}
}

func drawLines(ctx *canvas.Context, lines []layout.Line) {
	for _, ln := range lines {
		setShapeStyle(ctx, nil, ln.Color, ln.Width)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(ln.X2-ln.X1, ln.Y2-ln.Y1)
		ctx.DrawPath(ln.X1, ln.Y1, p)
	}
}

// setShapeStyle maps the layout convention (nil fill = unfilled,
// stroke width <= 0 = unstroked) onto the canvas context.
func setShapeStyle(ctx *canvas.Context, fill *layout.Color, stroke layout.Color, strokeWidth float64) {
	if fill != nil {
		ctx.SetFillColor(colorFromLayout(*fill))
	} else {
		ctx.SetFillColor(color.RGBA{})
	}
	if strokeWidth > 0 {
		ctx.SetStrokeColor(colorFromLayout(stroke))
		ctx.SetStrokeWidth(strokeWidth)
	} else {
		ctx.SetStrokeColor(color.RGBA{})
	}
}

func (r *Renderer) face(font layout.Font, sizePt float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFamily(font)
	if err != nil {
		return nil, err
	}
	style := canvas.FontRegular
	if font == layout.FontBold {
		style = canvas.FontBold
	}
	return family.Face(sizePt, colorFromLayout(col), style, canvas.FontNormal), nil
}

// ensureFamily registers the fonts on first use. Registering twice is a
// no-op by construction.
func (r *Renderer) ensureFamily(font layout.Font) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.families == nil {
		regular := canvas.NewFontFamily("label-regular")
		if err := regular.LoadFont(fonts.Regular(r.regularPath), 0, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("load regular font: %w", err)
		}
		bold := canvas.NewFontFamily("label-bold")
		if err := bold.LoadFont(fonts.Bold(r.boldPath), 0, canvas.FontBold); err != nil {
			return nil, fmt.Errorf("load bold font: %w", err)
		}
		r.families = map[layout.Font]*canvas.FontFamily{
			layout.FontRegular: regular,
			layout.FontBold:    bold,
		}
	}
	family, ok := r.families[font]
	if !ok {
		family = r.families[layout.FontRegular]
	}
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
