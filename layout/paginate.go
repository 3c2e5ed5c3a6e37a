package layout

import (
	"fmt"

	"github.com/larsOhne/beautiful-LEITZ/config"
	"github.com/larsOhne/beautiful-LEITZ/label"
)

// BuildOptions carries the dependencies of the layout stage.
type BuildOptions struct {
	// Measurer supplies text metrics; typically the canvas renderer.
	Measurer Measurer
	// Meta is copied into the result for the PDF document information.
	Meta DocumentMeta
}

// Build lays records out on A4 pages: labels go left to right in input
// order at a fixed vertical position, and a label that no longer fits
// the row starts a new page. One row per page is intentional; sheets are
// cut per batch, and batches share a height.
func Build(records []label.Record, cfg *config.Config, opts BuildOptions) (*Result, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("layout: no label records to place")
	}
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: missing text measurer")
	}
	if cfg == nil {
		return nil, fmt.Errorf("layout: missing configuration")
	}

	style := cfg.Style
	left, right, top := style.PageMarginLMM, style.PageMarginRMM, style.PageMarginTMM
	gutter := style.GutterXMM

	result := &Result{Meta: opts.Meta}
	var page *Page
	x := left
	for _, rec := range records {
		formatName, spec := cfg.ResolveFormat(rec.Format)
		w, h := spec.WidthMM, spec.HeightMM
		if page == nil || x+w > PageWidthMM-right {
			result.Pages = append(result.Pages, Page{Width: PageWidthMM, Height: PageHeightMM})
			page = &result.Pages[len(result.Pages)-1]
			x = left
		}
		buildLabel(page, cfg, rec, x, top, w, h, opts.Measurer)
		page.Labels = append(page.Labels, PlacedLabel{
			X: x, Y: top, Width: w, Height: h,
			Format: formatName, Record: rec,
		})
		x += w + gutter
	}
	return result, nil
}

// BuildLabel lays out a single record on a page trimmed to the label's
// own size, origin at (0,0). This is the preview path: the markup
// renderer turns the page into one standalone SVG fragment.
func BuildLabel(rec label.Record, cfg *config.Config, opts BuildOptions) (*Result, error) {
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: missing text measurer")
	}
	if cfg == nil {
		return nil, fmt.Errorf("layout: missing configuration")
	}
	formatName, spec := cfg.ResolveFormat(rec.Format)
	page := Page{Width: spec.WidthMM, Height: spec.HeightMM}
	buildLabel(&page, cfg, rec, 0, 0, spec.WidthMM, spec.HeightMM, opts.Measurer)
	page.Labels = append(page.Labels, PlacedLabel{
		Width: spec.WidthMM, Height: spec.HeightMM,
		Format: formatName, Record: rec,
	})
	return &Result{Pages: []Page{page}, Meta: opts.Meta}, nil
}
