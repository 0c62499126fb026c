// Package export converts rendered HTML into a PDF document through an
// injected exporter capability, so callers and tests do not require a
// browser to be installed.
package export

import "context"

// Exporter produces a PDF document from a rendered HTML file. Export
// returns an *UnavailableError when no backing renderer is installed and
// an *ExportError when the renderer fails; the HTML output is unaffected
// either way.
type Exporter interface {
	Export(ctx context.Context, htmlPath, pdfPath string) error
}
