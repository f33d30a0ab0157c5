package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/extractor"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract weighted keywords from a document",
	Long:  "Extract categorized, importance-weighted keywords from a resume or job posting text file.",
	RunE:  runExtract,
}

var (
	extractInputFile string
	extractCustom    []string
	extractUseAI     bool
	extractAPIKey    string
	extractJSON      bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to text file to extract from (required)")
	extractCmd.Flags().StringSliceVar(&extractCustom, "custom", nil, "Custom keywords to add to the dictionary")
	extractCmd.Flags().BoolVar(&extractUseAI, "use-ai", false, "Enrich the dictionary with AI-suggested keywords")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print results as JSON")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	text, err := readTextFile(extractInputFile)
	if err != nil {
		return err
	}

	snap, err := buildSnapshot(ctx, extractCustom, "", extractUseAI, resolveAPIKey(extractAPIKey), text, nil)
	if err != nil {
		return err
	}

	keywords := extractor.Extract(text, snap)

	if extractJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(keywords)
	}

	observability.NewPrinter(os.Stdout).PrintKeywords(keywords)
	fmt.Printf("Extracted %d keywords from %s\n", len(keywords), extractInputFile)
	return nil
}
