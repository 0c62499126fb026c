package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/andrewarz/resumeforge/internal/config"
	"github.com/andrewarz/resumeforge/internal/export"
	"github.com/andrewarz/resumeforge/internal/ingestion"
	"github.com/andrewarz/resumeforge/internal/logging"
	"github.com/andrewarz/resumeforge/internal/observability"
	"github.com/andrewarz/resumeforge/internal/parser"
	"github.com/andrewarz/resumeforge/internal/rendering"
)

var generateCmd = &cobra.Command{
	Use:   "generate <input-file>",
	Short: "Parse a plain-text resume and generate an HTML document",
	Long: `Parses a plain-text resume into a structured record and renders it as HTML.

With --pdf the HTML is additionally printed to PDF through headless Chrome;
a failed export is reported but does not fail the run, since the HTML output
can be printed to PDF manually from any browser.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var (
	generateConfigPath string
	generateOutput     string
	generatePDF        bool
	generatePDFOutput  string
	generateTemplate   string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "resume.html", "Output HTML file")
	generateCmd.Flags().BoolVar(&generatePDF, "pdf", false, "Also export a PDF (requires Chrome/Chromium)")
	generateCmd.Flags().StringVar(&generatePDFOutput, "pdf-output", "resume.pdf", "Output PDF file")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Path to HTML template (default: embedded template)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	cfg, err := mergedGenerateConfig(cmd)
	if err != nil {
		return err
	}

	runID := uuid.New()
	logger := logging.NewStderr(cfg.Verbose).With().
		Str("run_id", runID.String()[:8]).
		Logger()

	logger.Info().Str("input", inputPath).Msg("processing resume")

	content, err := ingestion.LoadFile(inputPath)
	if err != nil {
		return err
	}

	rec := parser.Parse(content)
	logger.Debug().
		Str("name", rec.Name).
		Int("jobs", len(rec.Experience)).
		Int("certifications", len(rec.Certifications)).
		Msg("resume parsed")

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResume(rec)
		printer.PrintExperience(rec.Experience)
		printer.PrintSkills(rec.Skills)
	}

	html, err := rendering.RenderHTML(rec, cfg.Template)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML output: %w", err)
	}
	logger.Info().Str("output", cfg.Output).Msg("resume HTML generated")

	if cfg.PDF {
		exporter := export.NewChromeExporter()
		if err := exporter.Export(cmd.Context(), cfg.Output, cfg.PDFOutput); err != nil {
			logger.Warn().Err(err).
				Msg("PDF export failed; open the HTML output in a browser and print to PDF manually")
		} else {
			logger.Info().Str("output", cfg.PDFOutput).Msg("resume PDF generated")
		}
	}

	return nil
}

// mergedGenerateConfig loads the optional config file and applies CLI
// overrides. Only flags the user explicitly set override config values.
func mergedGenerateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{
		Output:    generateOutput,
		PDFOutput: generatePDFOutput,
	}

	if generateConfigPath != "" {
		loaded, err := config.Load(generateConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if cfg.Output == "" {
			cfg.Output = "resume.html"
		}
		if cfg.PDFOutput == "" {
			cfg.PDFOutput = "resume.pdf"
		}
	}

	if cmd.Flags().Changed("output") {
		cfg.Output = generateOutput
	}
	if cmd.Flags().Changed("pdf") {
		cfg.PDF = generatePDF
	}
	if cmd.Flags().Changed("pdf-output") {
		cfg.PDFOutput = generatePDFOutput
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = generateTemplate
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = generateVerbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
