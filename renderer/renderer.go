// Package renderer defines the output side of the pipeline: anything
// that can turn a layout result into a finished document.
package renderer

import "github.com/larsOhne/beautiful-LEITZ/layout"

// Renderer produces the final document bytes (a PDF, an SVG sheet) from
// a layout result.
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
