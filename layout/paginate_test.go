package layout

import (
	"reflect"
	"testing"

	"github.com/larsOhne/beautiful-LEITZ/config"
	"github.com/larsOhne/beautiful-LEITZ/label"
)

func uniformConfig() *config.Config {
	cfg := config.Default()
	cfg.LabelSizes = config.FormatTable{}
	cfg.LabelSizes.Set("uniform", config.FormatSpec{WidthMM: 50, HeightMM: 100})
	cfg.Style.DefaultFormat = "uniform"
	return cfg
}

func uniformRecords(n int) []label.Record {
	recs := make([]label.Record, n)
	for i := range recs {
		recs[i] = label.Record{
			Category:  "Finance",
			ShortCode: "FIN",
			StartYear: 2010 + i,
			Format:    "uniform",
		}
	}
	return recs
}

// Five 50mm labels on a 210mm page with 10mm margins and 3mm gutter:
// three fit the first row (50+3+50+3+50 = 156 <= 190), a fourth would
// need 206, so the remaining two go to page 2.
func TestBuildRowWrapPagination(t *testing.T) {
	cfg := uniformConfig()
	result, err := Build(uniformRecords(5), cfg, BuildOptions{Measurer: fixedMeasurer{}})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(result.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(result.Pages))
	}
	if got := len(result.Pages[0].Labels); got != 3 {
		t.Fatalf("expected 3 labels on page 1, got %d", got)
	}
	if got := len(result.Pages[1].Labels); got != 2 {
		t.Fatalf("expected 2 labels on page 2, got %d", got)
	}

	wantX := []float64{10, 63, 116}
	for i, pl := range result.Pages[0].Labels {
		if pl.X != wantX[i] {
			t.Fatalf("label %d x: got=%g want=%g", i, pl.X, wantX[i])
		}
		if pl.Y != cfg.Style.PageMarginTMM {
			t.Fatalf("label %d y: got=%g want=%g", i, pl.Y, cfg.Style.PageMarginTMM)
		}
	}
	if result.Pages[1].Labels[0].X != 10 {
		t.Fatalf("page 2 must restart at the left margin, got x=%g", result.Pages[1].Labels[0].X)
	}
}

func TestBuildUnknownFormatFallsBackDeterministically(t *testing.T) {
	cfg := uniformConfig()
	recs := uniformRecords(1)
	recs[0].Format = "no-such-format"
	result, err := Build(recs, cfg, BuildOptions{Measurer: fixedMeasurer{}})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	pl := result.Pages[0].Labels[0]
	if pl.Format != "uniform" || pl.Width != 50 {
		t.Fatalf("expected fallback to the default format, got %q width=%g", pl.Format, pl.Width)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := config.Default()
	recs := []label.Record{
		{Category: "Finance", ShortCode: "FIN", StartYear: 2012, Subcategories: []string{"Taxes", "Bank"}, Format: "schmal"},
		{Category: "Notfall", ShortCode: "ICE", StartYear: 2020, Subcategories: []string{"Passports"}, Format: "breit"},
		{Category: "Unknown Things", ShortCode: "UNK", StartYear: 2001, Format: "mittel"},
	}
	first, err := Build(recs, cfg, BuildOptions{Measurer: fixedMeasurer{}})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	second, err := Build(recs, cfg, BuildOptions{Measurer: fixedMeasurer{}})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two builds of the same input differ")
	}
}

func TestBuildRejectsEmptyInput(t *testing.T) {
	if _, err := Build(nil, config.Default(), BuildOptions{Measurer: fixedMeasurer{}}); err == nil {
		t.Fatalf("expected an error for an empty record set")
	}
}

func TestBuildRequiresMeasurer(t *testing.T) {
	if _, err := Build(uniformRecords(1), uniformConfig(), BuildOptions{}); err == nil {
		t.Fatalf("expected an error when no measurer is supplied")
	}
}

func TestBuildLabelSinglePage(t *testing.T) {
	cfg := config.Default()
	rec := label.Record{Category: "Finance", ShortCode: "FIN", StartYear: 2012, Format: "mittel"}
	result, err := BuildLabel(rec, cfg, BuildOptions{Measurer: fixedMeasurer{}})
	if err != nil {
		t.Fatalf("BuildLabel error: %v", err)
	}
	if len(result.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(result.Pages))
	}
	page := result.Pages[0]
	if page.Width != 52 || page.Height != 285 {
		t.Fatalf("page must be trimmed to the label size, got %gx%g", page.Width, page.Height)
	}
	if len(page.Labels) != 1 || page.Labels[0].X != 0 || page.Labels[0].Y != 0 {
		t.Fatalf("label must sit at the origin: %+v", page.Labels)
	}
}
