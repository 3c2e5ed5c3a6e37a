package layout

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip verifies pt<->mm conversion round-trips within float
// precision.
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 5, 9, 14, 72, 285}
	for _, pt := range samples {
		back := pt * PtToMm * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt->mm->pt drift: in=%g back=%g diff=%g", pt, back, diff)
		}
	}
	for _, mm := range samples {
		back := mm * MmToPt * PtToMm
		if diff := math.Abs(back - mm); diff > 1e-9 {
			t.Fatalf("mm->pt->mm drift: in=%g back=%g diff=%g", mm, back, diff)
		}
	}
}
