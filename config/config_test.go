package config

import (
	"path/filepath"
	"testing"
)

const sampleYAML = `
style:
  year_min: 1990
  year_max: 2030
  padding_mm: 3
  page_margin_l_mm: 10
  page_margin_r_mm: 10
  notfall_border_mm: 4
label_sizes:
  wide:
    width_mm: 80
    height_mm: 150
  narrow:
    width_mm: 38
    height_mm: 150
categories:
  Finance:
    base_color: "#2E7D32"
    short_code: FIN
  Notfall:
    base_color: "#C62828"
    short_code: ICE
    is_emergency: true
`

func TestParsePreservesDeclaredFormatOrder(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	names := cfg.LabelSizes.Names()
	if len(names) != 2 || names[0] != "wide" || names[1] != "narrow" {
		t.Fatalf("declared order not preserved: %v", names)
	}
	first, spec, ok := cfg.LabelSizes.First()
	if !ok || first != "wide" || spec.WidthMM != 80 {
		t.Fatalf("First() mismatch: %q %+v", first, spec)
	}
}

func TestParseLegacyEmergencyBorderKey(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Style.EmergencyBorderMM != 4 {
		t.Fatalf("legacy notfall_border_mm not honored: got=%g", cfg.Style.EmergencyBorderMM)
	}
	if cfg.Style.LegacyNotfallBorderMM != 0 {
		t.Fatalf("legacy key must be cleared after normalization")
	}
}

func TestParseFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Style.FontSizeHeader != 14 || cfg.Style.MaxSubcategories != 5 {
		t.Fatalf("zero style fields not defaulted: %+v", cfg.Style)
	}
	if cfg.Style.SubheaderPattern == "" || cfg.Style.EmergencyText == "" {
		t.Fatalf("text templates not defaulted")
	}
}

func TestParseRejectsInvertedYearRange(t *testing.T) {
	bad := `
style:
  year_min: 2030
  year_max: 1990
`
	if _, err := Parse([]byte(bad)); err == nil {
		t.Fatalf("expected error for year_max <= year_min")
	}
}

func TestResolveFormatFallbackChain(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	// Known name resolves directly, case-insensitively.
	if name, spec := cfg.ResolveFormat(" Narrow "); name != "narrow" || spec.WidthMM != 38 {
		t.Fatalf("direct lookup failed: %q %+v", name, spec)
	}

	// Unknown name, configured default.
	cfg.Style.DefaultFormat = "narrow"
	if name, _ := cfg.ResolveFormat("bogus"); name != "narrow" {
		t.Fatalf("default_format fallback failed: %q", name)
	}

	// Unknown name, no usable default: first declared format wins.
	cfg.Style.DefaultFormat = ""
	if name, spec := cfg.ResolveFormat("bogus"); name != "wide" || spec.WidthMM != 80 {
		t.Fatalf("first-declared fallback failed: %q %+v", name, spec)
	}
	cfg.Style.DefaultFormat = "also-bogus"
	if name, _ := cfg.ResolveFormat("bogus"); name != "wide" {
		t.Fatalf("unresolvable default must fall through to first declared: %q", name)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label_config.yaml")
	cfg := Default()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got, want := loaded.LabelSizes.Names(), cfg.LabelSizes.Names(); len(got) != len(want) {
		t.Fatalf("format count changed in round trip: %v vs %v", got, want)
	} else {
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("format order changed in round trip: %v vs %v", got, want)
			}
		}
	}
	if loaded.Style.EmergencyBorderMM != cfg.Style.EmergencyBorderMM {
		t.Fatalf("style not preserved in round trip")
	}
	if len(loaded.Categories) != len(cfg.Categories) {
		t.Fatalf("categories not preserved in round trip")
	}
}

func TestEnsureWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "label_config.yaml")
	cfg, err := Ensure(path)
	if err != nil {
		t.Fatalf("Ensure error: %v", err)
	}
	if cfg.LabelSizes.Len() == 0 {
		t.Fatalf("default config missing label sizes")
	}
	again, err := Ensure(path)
	if err != nil {
		t.Fatalf("second Ensure error: %v", err)
	}
	if again.Style.YearMin != cfg.Style.YearMin {
		t.Fatalf("reloaded config differs from written default")
	}
}
