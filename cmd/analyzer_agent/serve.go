package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing the extraction, analysis, scoring, and keyword management endpoints. The database and Gemini API key are both optional.",
	RunE:  runServe,
}

var (
	servePort       int
	serveUseBrowser bool
	serveVerbose    bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-heavy job pages")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed output")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		UseBrowser:  serveUseBrowser,
		Verbose:     serveVerbose,
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
