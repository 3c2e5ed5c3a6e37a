package layout

import "testing"

// fixedMeasurer gives every rune a width of 2mm regardless of font and
// size, which makes expected line breaks easy to state in tests.
type fixedMeasurer struct{}

func (fixedMeasurer) TextWidth(text string, _ Font, _ float64) float64 {
	return float64(len([]rune(text))) * 2
}

func TestWrapTextGreedy(t *testing.T) {
	m := fixedMeasurer{}
	// maxWidth equals the width of "one two" (7 runes * 2mm).
	lines := WrapText("one two three", 14, FontRegular, 9, m)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0].Content != "one two" || lines[1].Content != "three" {
		t.Fatalf("unexpected line breaks: %q / %q", lines[0].Content, lines[1].Content)
	}
}

func TestWrapTextOverwideWordStandsAlone(t *testing.T) {
	m := fixedMeasurer{}
	lines := WrapText("a bbbbbbbbbbbb c", 10, FontRegular, 9, m)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[1].Content != "bbbbbbbbbbbb" {
		t.Fatalf("over-wide word must stand alone unsplit, got %q", lines[1].Content)
	}
	if lines[0].Content != "a" || lines[2].Content != "c" {
		t.Fatalf("unexpected surrounding lines: %q / %q", lines[0].Content, lines[2].Content)
	}
}

func TestWrapTextEmpty(t *testing.T) {
	if lines := WrapText("   ", 10, FontRegular, 9, fixedMeasurer{}); lines != nil {
		t.Fatalf("expected no lines for blank input, got %v", lines)
	}
}

func TestWrapTextSingleLine(t *testing.T) {
	lines := WrapText("short", 100, FontBold, 14, fixedMeasurer{})
	if len(lines) != 1 || lines[0].Content != "short" {
		t.Fatalf("expected single untouched line, got %v", lines)
	}
	if lines[0].Width != 10 {
		t.Fatalf("line width mismatch: got=%g want=10", lines[0].Width)
	}
}
