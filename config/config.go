// Package config holds the YAML-backed rendering configuration: global
// style parameters, the category palette and the label size table.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CategoryStyle configures one category's appearance.
type CategoryStyle struct {
	BaseColor   string `yaml:"base_color"`
	ShortCode   string `yaml:"short_code"`
	IsEmergency bool   `yaml:"is_emergency"`
}

// FormatSpec is a named physical label size.
type FormatSpec struct {
	WidthMM  float64 `yaml:"width_mm"`
	HeightMM float64 `yaml:"height_mm"`
}

// Style collects the global rendering parameters. All lengths are
// millimeters, font sizes are points.
type Style struct {
	FontPathRegular string `yaml:"font_path_regular,omitempty"`
	FontPathBold    string `yaml:"font_path_bold,omitempty"`

	FontSizeHeader    float64 `yaml:"font_size_header"`
	FontSizeSubheader float64 `yaml:"font_size_subheader"`
	FontSizeBody      float64 `yaml:"font_size_body"`

	PageMarginLMM float64 `yaml:"page_margin_l_mm"`
	PageMarginRMM float64 `yaml:"page_margin_r_mm"`
	PageMarginTMM float64 `yaml:"page_margin_t_mm"`
	PageMarginBMM float64 `yaml:"page_margin_b_mm"`
	GutterXMM     float64 `yaml:"gutter_x_mm"`

	TopBarHeightMM    float64 `yaml:"top_bar_height_mm"`
	PaddingMM         float64 `yaml:"padding_mm"`
	EmergencyBorderMM float64 `yaml:"emergency_border_mm"`
	// Legacy spelling of emergency_border_mm; honored on load when the
	// canonical key is absent, never written back.
	LegacyNotfallBorderMM float64 `yaml:"notfall_border_mm,omitempty"`

	YearMin int `yaml:"year_min"`
	YearMax int `yaml:"year_max"`

	MaxSubcategories int     `yaml:"max_subcategories"`
	TimelineMarkers  int     `yaml:"timeline_markers"`
	TimelineGapMM    float64 `yaml:"timeline_gap_mm"`
	TimelineRadiusMM float64 `yaml:"timeline_radius_mm"`

	SubheaderPattern string `yaml:"subheader_pattern"`
	EmergencyText    string `yaml:"emergency_text"`

	// DefaultFormat names the size used when a record's format is
	// unknown. When empty or itself unknown, the first format in the
	// table's declared order applies.
	DefaultFormat string `yaml:"default_format,omitempty"`
}

// Config is the root of the YAML document.
type Config struct {
	Style      Style                    `yaml:"style"`
	LabelSizes FormatTable              `yaml:"label_sizes"`
	Categories map[string]CategoryStyle `yaml:"categories"`
}

// Default returns the configuration written on first run. Palette and
// sizes follow the classic LEITZ spine formats.
func Default() *Config {
	cfg := &Config{
		Style: Style{
			FontSizeHeader:    14,
			FontSizeSubheader: 9,
			FontSizeBody:      9,
			PageMarginLMM:     10,
			PageMarginRMM:     10,
			PageMarginTMM:     10,
			PageMarginBMM:     20,
			GutterXMM:         3,
			TopBarHeightMM:    30,
			PaddingMM:         3,
			EmergencyBorderMM: 2,
			YearMin:           1990,
			YearMax:           2030,
			MaxSubcategories:  5,
			TimelineMarkers:   4,
			TimelineGapMM:     12,
			TimelineRadiusMM:  3,
			SubheaderPattern:  "${short}-${year}",
			EmergencyText:     "IN CASE OF EMERGENCY:\nTake this binder when leaving due to fire or flood!",
			DefaultFormat:     "schmal",
		},
		Categories: map[string]CategoryStyle{
			"Finance":   {BaseColor: "#2E7D32", ShortCode: "FIN"},
			"Insurance": {BaseColor: "#1565C0", ShortCode: "INS"},
			"Notfall":   {BaseColor: "#C62828", ShortCode: "ICE", IsEmergency: true},
			"Projects":  {BaseColor: "#F57C00", ShortCode: "PRJ"},
			"Medical":   {BaseColor: "#6A1B9A", ShortCode: "MED"},
			"Legal":     {BaseColor: "#455A64", ShortCode: "LEG"},
		},
	}
	cfg.LabelSizes.Set("schmal", FormatSpec{WidthMM: 38, HeightMM: 285})
	cfg.LabelSizes.Set("mittel", FormatSpec{WidthMM: 52, HeightMM: 285})
	cfg.LabelSizes.Set("breit", FormatSpec{WidthMM: 61, HeightMM: 285})
	cfg.LabelSizes.Set("extra", FormatSpec{WidthMM: 80, HeightMM: 285})
	return cfg
}

// Parse decodes a YAML document and normalizes it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Ensure loads path, writing the default configuration first if the file
// does not exist yet.
func Ensure(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.Save(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Load(path)
}

func (c *Config) normalize() error {
	s := &c.Style
	if s.EmergencyBorderMM == 0 && s.LegacyNotfallBorderMM != 0 {
		s.EmergencyBorderMM = s.LegacyNotfallBorderMM
	}
	s.LegacyNotfallBorderMM = 0

	def := Default().Style
	if s.FontSizeHeader <= 0 {
		s.FontSizeHeader = def.FontSizeHeader
	}
	if s.FontSizeSubheader <= 0 {
		s.FontSizeSubheader = def.FontSizeSubheader
	}
	if s.FontSizeBody <= 0 {
		s.FontSizeBody = def.FontSizeBody
	}
	if s.PageMarginTMM <= 0 {
		s.PageMarginTMM = def.PageMarginTMM
	}
	if s.GutterXMM <= 0 {
		s.GutterXMM = def.GutterXMM
	}
	if s.TopBarHeightMM <= 0 {
		s.TopBarHeightMM = def.TopBarHeightMM
	}
	if s.EmergencyBorderMM <= 0 {
		s.EmergencyBorderMM = def.EmergencyBorderMM
	}
	if s.MaxSubcategories <= 0 {
		s.MaxSubcategories = def.MaxSubcategories
	}
	if s.TimelineMarkers <= 0 {
		s.TimelineMarkers = def.TimelineMarkers
	}
	if s.TimelineGapMM <= 0 {
		s.TimelineGapMM = def.TimelineGapMM
	}
	if s.TimelineRadiusMM <= 0 {
		s.TimelineRadiusMM = def.TimelineRadiusMM
	}
	if s.SubheaderPattern == "" {
		s.SubheaderPattern = def.SubheaderPattern
	}
	if s.EmergencyText == "" {
		s.EmergencyText = def.EmergencyText
	}
	if s.YearMin == 0 && s.YearMax == 0 {
		s.YearMin, s.YearMax = def.YearMin, def.YearMax
	}
	if s.YearMax <= s.YearMin {
		return fmt.Errorf("config: year_max (%d) must be greater than year_min (%d)", s.YearMax, s.YearMin)
	}
	if c.LabelSizes.Len() == 0 {
		c.LabelSizes = Default().LabelSizes
	}
	if c.Categories == nil {
		c.Categories = map[string]CategoryStyle{}
	}
	return nil
}

// Category looks up the style for a category name.
func (c *Config) Category(name string) (CategoryStyle, bool) {
	cs, ok := c.Categories[name]
	return cs, ok
}

// ResolveFormat maps a record's format key to a FormatSpec. The fallback
// chain for unknown keys is deterministic: the configured default format,
// then the first format in declared order, then a built-in 38x285 size.
// The resolved format name is returned alongside the spec.
func (c *Config) ResolveFormat(name string) (string, FormatSpec) {
	if spec, ok := c.LabelSizes.Get(name); ok {
		return c.LabelSizes.canonical(name), spec
	}
	if c.Style.DefaultFormat != "" {
		if spec, ok := c.LabelSizes.Get(c.Style.DefaultFormat); ok {
			return c.LabelSizes.canonical(c.Style.DefaultFormat), spec
		}
	}
	if name, spec, ok := c.LabelSizes.First(); ok {
		return name, spec
	}
	return "schmal", FormatSpec{WidthMM: 38, HeightMM: 285}
}
