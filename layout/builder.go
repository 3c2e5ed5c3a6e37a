package layout

import (
	"github.com/larsOhne/beautiful-LEITZ/config"
	"github.com/larsOhne/beautiful-LEITZ/label"
)

// Fixed drawing parameters that are not worth a config knob. Lengths in
// mm unless suffixed otherwise.
const (
	borderWidthMM      = 0.35 // outer label border
	emergencyInsetMM   = 0.5  // inset of the secondary emergency border
	contentOffsetMM    = 8.0  // gap between bar bottom and "Contents:"
	bulletIndentMM     = 1.5  // extra indent of bullet lines
	timelineBottomMM   = 10.0 // first marker center above the label bottom
	yearLabelWidthMM   = 20.0 // centered box under the first marker
	handwriteHalfMM    = 7.5  // half-length of the handwriting rule
	handwriteWidthMM   = 0.18 // stroke width of the handwriting rule
	timelineSizePt     = 7.0
	emergencySizePt    = 5.0
	emergencyFraction  = 0.45 // vertical position of the emergency message
	emergencyMaxLines  = 4
	emergencyMaxRunes  = 35 // longer lines are cut to 32 runes + "..."
	lineHeightFactor   = 1.15
	contentFloorGapMM  = 4.0 // clearance kept above the topmost marker
)

var handwriteGray = Color{204, 204, 204}

// buildLabel emits the draw instructions for one label with its top-left
// corner at (x0, y0) and size w x h. Structure, top to bottom: border,
// optional emergency border, header bar with category and short code,
// contents list, timeline markers, optional emergency message.
func buildLabel(p *Page, cfg *config.Config, rec label.Record, x0, y0, w, h float64, m Measurer) {
	style := cfg.Style
	pad := style.PaddingMM
	barH := style.TopBarHeightMM

	accent := AccentColor(cfg, rec.Category, rec.StartYear)
	base := BaseColor(cfg, rec.Category)
	textOnBar := ContrastText(accent)
	cs, _ := cfg.Category(rec.Category)

	// 1. Border.
	p.Rects = append(p.Rects, Rect{
		X: x0, Y: y0, Width: w, Height: h,
		StrokeColor: Black, StrokeWidth: borderWidthMM,
	})

	// 2. Emergency categories get a second, inset border in their base
	// color so the binder is findable in a hurry.
	if cs.IsEmergency {
		p.Rects = append(p.Rects, Rect{
			X:           x0 + emergencyInsetMM,
			Y:           y0 + emergencyInsetMM,
			Width:       w - 2*emergencyInsetMM,
			Height:      h - 2*emergencyInsetMM,
			StrokeColor: base,
			StrokeWidth: style.EmergencyBorderMM / 3.0,
		})
	}

	// 3. Header bar.
	p.Rects = append(p.Rects, Rect{
		X: x0, Y: y0, Width: w, Height: barH,
		FillColor: &accent,
	})

	// 4. Category name (bold, wrapped to the bar width) and the short
	// code line below it, both in the contrast color.
	headerLH := style.FontSizeHeader * PtToMm * lineHeightFactor
	headerLines := WrapText(rec.Category, w-2*pad, FontBold, style.FontSizeHeader, m)
	p.Texts = append(p.Texts, TextBox{
		X: x0 + pad, Y: y0 + pad, Width: w - 2*pad,
		Font: FontBold, FontSize: style.FontSizeHeader * PtToMm,
		LineHeight: headerLH, Color: textOnBar,
		Lines: headerLines,
	})
	subY := y0 + pad + float64(len(headerLines))*headerLH + 1
	p.Texts = append(p.Texts, TextBox{
		X: x0 + pad, Y: subY, Width: w - 2*pad,
		Font: FontRegular, FontSize: style.FontSizeSubheader * PtToMm,
		LineHeight: style.FontSizeSubheader * PtToMm * lineHeightFactor,
		Color:      textOnBar,
		Lines:      splitLines(rec.Expand(style.SubheaderPattern), FontRegular, style.FontSizeSubheader, m),
	})

	// 5. Contents list. Bullets stop at the floor above the timeline;
	// label height is fixed, so an unbounded list must not run into it.
	bodyLH := style.FontSizeBody * PtToMm * lineHeightFactor
	contentY := y0 + barH + contentOffsetMM
	p.Texts = append(p.Texts, TextBox{
		X: x0 + pad, Y: contentY, Width: w - 2*pad,
		Font: FontBold, FontSize: style.FontSizeBody * PtToMm,
		LineHeight: bodyLH, Color: Black,
		Lines: []TextLine{{Content: "Contents:", Width: m.TextWidth("Contents:", FontBold, style.FontSizeBody)}},
	})

	bulletSize := style.FontSizeBody - 1
	bulletLH := bulletSize * PtToMm * lineHeightFactor
	floorY := contentFloor(style, y0, h)
	bulletY := contentY + bodyLH
	var bulletLines []TextLine
	subs := rec.Subcategories
	if len(subs) > style.MaxSubcategories {
		subs = subs[:style.MaxSubcategories]
	}
collect:
	for _, sub := range subs {
		for _, line := range WrapText("• "+sub, w-2*pad-bulletIndentMM, FontRegular, bulletSize, m) {
			if bulletY+float64(len(bulletLines)+1)*bulletLH > floorY {
				break collect
			}
			bulletLines = append(bulletLines, line)
		}
	}
	if len(bulletLines) > 0 {
		p.Texts = append(p.Texts, TextBox{
			X: x0 + pad + bulletIndentMM, Y: bulletY, Width: w - 2*pad - bulletIndentMM,
			Font: FontRegular, FontSize: bulletSize * PtToMm,
			LineHeight: bulletLH, Color: Black,
			Lines: bulletLines,
		})
	}

	buildTimeline(p, &style, rec, x0, y0, w, h, m)

	// 7. Emergency overlay message, centered, explicit newlines only.
	if cs.IsEmergency {
		buildEmergencyText(p, &style, rec, x0, y0, w, h, m)
	}
}

// buildTimeline draws the vertical marker column: the bottom circle is
// annotated with the start year, the ones above stay blank with a faint
// rule for handwritten relabeling in later years.
func buildTimeline(p *Page, style *config.Style, rec label.Record, x0, y0, w, h float64, m Measurer) {
	cx := x0 + w/2
	firstY := y0 + h - timelineBottomMM
	for i := 0; i < style.TimelineMarkers; i++ {
		cy := firstY - float64(i)*style.TimelineGapMM
		p.Circles = append(p.Circles, Circle{
			CX: cx, CY: cy, R: style.TimelineRadiusMM,
			StrokeColor: Black, StrokeWidth: borderWidthMM,
		})
		if i == 0 {
			continue
		}
		p.Lines = append(p.Lines, Line{
			X1: cx - handwriteHalfMM, Y1: cy + style.TimelineRadiusMM + 1,
			X2: cx + handwriteHalfMM, Y2: cy + style.TimelineRadiusMM + 1,
			Color: handwriteGray, Width: handwriteWidthMM,
		})
	}
	year := rec.Expand("${year}")
	p.Texts = append(p.Texts, TextBox{
		X: cx - yearLabelWidthMM/2, Y: firstY + style.TimelineRadiusMM + 1,
		Width: yearLabelWidthMM, Align: "center",
		Font: FontBold, FontSize: timelineSizePt * PtToMm,
		LineHeight: timelineSizePt * PtToMm * lineHeightFactor,
		Color:      Black,
		Lines:      []TextLine{{Content: year, Width: m.TextWidth(year, FontBold, timelineSizePt)}},
	})
}

func buildEmergencyText(p *Page, style *config.Style, rec label.Record, x0, y0, w, h float64, m Measurer) {
	lines := splitLines(rec.Expand(style.EmergencyText), FontBold, emergencySizePt, m)
	if len(lines) > emergencyMaxLines {
		lines = lines[:emergencyMaxLines]
	}
	for i, line := range lines {
		runes := []rune(line.Content)
		if len(runes) > emergencyMaxRunes {
			content := string(runes[:emergencyMaxRunes-3]) + "..."
			lines[i] = TextLine{Content: content, Width: m.TextWidth(content, FontBold, emergencySizePt)}
		}
	}
	p.Texts = append(p.Texts, TextBox{
		X: x0, Y: y0 + h*emergencyFraction, Width: w, Align: "center",
		Font: FontBold, FontSize: emergencySizePt * PtToMm,
		LineHeight: emergencySizePt * PtToMm * lineHeightFactor,
		Color:      Black,
		Lines:      lines,
	})
}

// contentFloor is the lowest Y the contents list may reach: just above
// the topmost timeline marker.
func contentFloor(style config.Style, y0, h float64) float64 {
	topMarker := y0 + h - timelineBottomMM - float64(style.TimelineMarkers-1)*style.TimelineGapMM
	return topMarker - style.TimelineRadiusMM - contentFloorGapMM
}
