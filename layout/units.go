package layout

// Conversion constants between pt and mm. Every coordinate the layout
// emits is millimeters; font sizes cross into points at the renderer
// boundary.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// A4 page size in millimeters. The sheet format is fixed: the physical
// labels are cut from an A4 printout.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)
