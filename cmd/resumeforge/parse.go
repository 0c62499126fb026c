package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewarz/resumeforge/internal/ingestion"
	"github.com/andrewarz/resumeforge/internal/logging"
	"github.com/andrewarz/resumeforge/internal/parser"
	"github.com/andrewarz/resumeforge/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input-file>",
	Short: "Parse a plain-text resume and emit the structured record as JSON",
	Long: `Parses a plain-text resume and writes the structured record as pretty JSON
to the output file, or to stdout when no output is given. With --validate the
record is checked against the resume record JSON Schema before it is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	parseOutput   string
	parseValidate bool
	parseVerbose  bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Output JSON file (default: stdout)")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the record against the JSON Schema")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := logging.NewStderr(parseVerbose)

	content, err := ingestion.LoadFile(inputPath)
	if err != nil {
		return err
	}

	rec := parser.Parse(content)
	logger.Debug().Str("name", rec.Name).Msg("resume parsed")

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	data = append(data, '\n')

	if parseValidate {
		schemaPath := schemas.ResolveSchemaPath(schemas.ResumeRecordSchema)
		if schemaPath == "" {
			return fmt.Errorf("schema file not found: %s", schemas.ResumeRecordSchema)
		}
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return err
		}
		logger.Debug().Str("schema", schemaPath).Msg("record validated")
	}

	if parseOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(parseOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	logger.Info().Str("output", parseOutput).Msg("record written")
	return nil
}
