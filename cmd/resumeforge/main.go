// Package main implements the resumeforge CLI for converting plain-text
// resumes into formatted HTML and PDF documents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumeforge",
	Short: "Plain-text resume to HTML/PDF converter",
	Long:  "resumeforge parses a conventionally formatted plain-text resume into a structured record and renders it as a professional HTML document, optionally exporting a PDF through headless Chrome.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
