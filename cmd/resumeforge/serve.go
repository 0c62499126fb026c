package main

import (
	"github.com/spf13/cobra"

	"github.com/andrewarz/resumeforge/internal/logging"
	"github.com/andrewarz/resumeforge/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parser and renderer over HTTP",
	Long: `Starts a stateless HTTP API. POST /v1/parse returns the structured record
for the posted resume text; POST /v1/render returns the rendered HTML.`,
	RunE: runServe,
}

var (
	serveAddr    string
	serveVerbose bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Log every request")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := logging.NewStderr(serveVerbose)
	srv := server.New(logger)
	return srv.ListenAndServe(serveAddr)
}
