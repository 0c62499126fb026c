package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/andrewarz/resumeforge/internal/ingestion"
	"github.com/andrewarz/resumeforge/internal/logging"
	"github.com/andrewarz/resumeforge/internal/parser"
	"github.com/andrewarz/resumeforge/internal/rendering"
)

var batchCmd = &cobra.Command{
	Use:   "batch <input-file>...",
	Short: "Convert multiple plain-text resumes to HTML concurrently",
	Long: `Parses and renders every input file, writing <name>.html into the output
directory. Files are processed concurrently; per-file failures are logged and
the first error is returned after all files settle.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchOutDir      string
	batchConcurrency int
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", ".", "Directory for generated HTML files")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum number of files processed in parallel")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	logger := logging.NewStderr(batchVerbose)

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var g errgroup.Group
	if batchConcurrency > 0 {
		g.SetLimit(batchConcurrency)
	}

	for _, inputPath := range args {
		inputPath := inputPath
		g.Go(func() error {
			outPath := filepath.Join(batchOutDir, htmlName(inputPath))

			content, err := ingestion.LoadFile(inputPath)
			if err != nil {
				logger.Error().Err(err).Str("input", inputPath).Msg("skipping file")
				return err
			}

			rec := parser.Parse(content)
			html, err := rendering.RenderHTML(rec, "")
			if err != nil {
				logger.Error().Err(err).Str("input", inputPath).Msg("render failed")
				return err
			}

			if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			logger.Info().Str("input", inputPath).Str("output", outPath).Msg("resume generated")
			return nil
		})
	}

	return g.Wait()
}

// htmlName derives the output file name from the input path, swapping
// the extension for .html.
func htmlName(inputPath string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".html"
}
