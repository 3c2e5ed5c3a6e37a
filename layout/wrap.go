package layout

import "strings"

// Measurer reports the rendered width of a string in millimeters for one
// of the registered faces at a font size given in points. The canvas
// renderer implements it with real font metrics; tests inject a
// fixed-width fake.
type Measurer interface {
	TextWidth(text string, font Font, sizePt float64) float64
}

// WrapText breaks text into lines no wider than maxWidth millimeters
// using greedy word wrapping: a word joins the current line if the line
// still fits afterwards, otherwise it starts the next line. A single
// word wider than maxWidth gets a line of its own; words are never split.
func WrapText(text string, maxWidth float64, font Font, sizePt float64, m Measurer) []TextLine {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []TextLine
	line := ""
	for _, word := range words {
		test := word
		if line != "" {
			test = line + " " + word
		}
		if line == "" || m.TextWidth(test, font, sizePt) <= maxWidth {
			line = test
			continue
		}
		lines = append(lines, TextLine{Content: line, Width: m.TextWidth(line, font, sizePt)})
		line = word
	}
	lines = append(lines, TextLine{Content: line, Width: m.TextWidth(line, font, sizePt)})
	return lines
}

// splitLines turns explicitly newline-separated text into TextLines
// without any width-based wrapping (used for the emergency message).
func splitLines(text string, font Font, sizePt float64, m Measurer) []TextLine {
	parts := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]TextLine, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		lines = append(lines, TextLine{Content: p, Width: m.TextWidth(p, font, sizePt)})
	}
	return lines
}
