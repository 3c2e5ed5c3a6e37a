package layout

import (
	"crypto/sha1"
	"encoding/binary"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/larsOhne/beautiful-LEITZ/config"
)

// Color model: a category resolves to a base color either from the
// configured palette or, for unconfigured names, from a hash of the name
// so that the same category always prints in the same color. The header
// bar additionally tints toward white as the start year approaches
// year_max, which makes binder age readable at a glance on the shelf.

// BaseColor returns the display color for a category. Configured colors
// win; anything else (missing category, unparsable hex) derives a stable
// color from the name.
func BaseColor(cfg *config.Config, category string) Color {
	if cs, ok := cfg.Category(category); ok {
		if c, err := colorful.Hex(cs.BaseColor); err == nil {
			return fromColorful(c)
		}
	}
	return hashColor(category)
}

// AccentColor is the year-tinted header bar color. Emergency categories
// keep their base color regardless of year.
func AccentColor(cfg *config.Config, category string, startYear int) Color {
	base := BaseColor(cfg, category)
	if cs, ok := cfg.Category(category); ok && cs.IsEmergency {
		return base
	}
	yearMin, yearMax := cfg.Style.YearMin, cfg.Style.YearMax
	t := clamp(float64(startYear-yearMin)/float64(yearMax-yearMin), 0, 1)
	blended := toColorful(base).BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, t)
	return fromColorful(blended)
}

// ContrastText picks black or white for text drawn on bg, using the
// Rec.601 luma weights.
func ContrastText(bg Color) Color {
	lum := 0.299*float64(bg.R)/255 + 0.587*float64(bg.G)/255 + 0.114*float64(bg.B)/255
	if lum > 0.5 {
		return Black
	}
	return White
}

// hashColor maps a name to HSL with hue in [0,360), saturation in
// [0.45,0.65) and lightness in [0.45,0.60) via the first four bytes of
// its SHA-1 digest. SHA-1 keeps the mapping stable across runs and
// implementations.
func hashColor(name string) Color {
	sum := sha1.Sum([]byte(name))
	h := binary.BigEndian.Uint32(sum[:4])
	hue := float64(h%36000) / 100.0
	sat := 0.45 + float64((h>>8)%2000)/2000.0*0.20
	lig := 0.45 + float64((h>>16)%1500)/1500.0*0.15
	return fromColorful(colorful.Hsl(hue, sat, lig))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: int(r), G: int(g), B: int(b)}
}
