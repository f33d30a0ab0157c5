// Package main provides the entry point for the Resume Analyzer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer_agent",
	Short: "Resume Analyzer CLI and HTTP API server",
	Long:  "Resume Analyzer extracts weighted keywords from resumes and job postings, scores how well a resume matches a posting, and produces targeted improvement suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
