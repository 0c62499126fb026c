package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultExportTimeout bounds a single print-to-PDF run.
const DefaultExportTimeout = 30 * time.Second

// chromeBinaries are the executable names probed for a usable browser.
var chromeBinaries = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
}

// ChromeExporter renders an HTML file in headless Chrome and prints it
// to PDF. Requires Chrome/Chromium to be installed on the system.
type ChromeExporter struct {
	Timeout time.Duration
}

// NewChromeExporter returns a ChromeExporter with the default timeout.
func NewChromeExporter() *ChromeExporter {
	return &ChromeExporter{Timeout: DefaultExportTimeout}
}

// Available reports whether a Chrome/Chromium binary can be found on
// PATH.
func (e *ChromeExporter) Available() bool {
	for _, name := range chromeBinaries {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// Export loads the HTML file in a headless browser and writes the
// printed PDF to pdfPath.
func (e *ChromeExporter) Export(ctx context.Context, htmlPath, pdfPath string) error {
	if !e.Available() {
		return &UnavailableError{
			Message: "no Chrome or Chromium binary found on PATH",
		}
	}

	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return &ExportError{
			Message: fmt.Sprintf("failed to resolve HTML path: %s", htmlPath),
			Cause:   err,
		}
	}
	if _, err := os.Stat(absPath); err != nil {
		return &ExportError{
			Message: fmt.Sprintf("HTML file not readable: %s", htmlPath),
			Cause:   err,
		}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultExportTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+absPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return &ExportError{
			Message: "browser print-to-pdf failed",
			Cause:   err,
		}
	}

	if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
		return &ExportError{
			Message: fmt.Sprintf("failed to write PDF: %s", pdfPath),
			Cause:   err,
		}
	}
	return nil
}
