package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/extractor"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/scoring"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two resume versions",
	Long:  "Diff two resume versions: keywords gained and lost, word count change, and a coarse score delta.",
	RunE:  runCompare,
}

var (
	compareOldFile string
	compareNewFile string
	compareCustom  []string
	compareJSON    bool
)

func init() {
	compareCmd.Flags().StringVar(&compareOldFile, "old", "", "Path to the earlier resume version (required)")
	compareCmd.Flags().StringVar(&compareNewFile, "new", "", "Path to the later resume version (required)")
	compareCmd.Flags().StringSliceVar(&compareCustom, "custom", nil, "Custom keywords to add to the dictionary")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Print results as JSON")
	_ = compareCmd.MarkFlagRequired("old")
	_ = compareCmd.MarkFlagRequired("new")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	oldText, err := readTextFile(compareOldFile)
	if err != nil {
		return err
	}
	newText, err := readTextFile(compareNewFile)
	if err != nil {
		return err
	}

	snap := dictionary.BuiltIn().WithCustom(dictionary.CleanCustom(compareCustom))
	diff := scoring.CompareVersions(
		scoring.ResumeVersion{Text: oldText, Keywords: extractor.Extract(oldText, snap)},
		scoring.ResumeVersion{Text: newText, Keywords: extractor.Extract(newText, snap)},
	)

	if compareJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(diff)
	}

	observability.NewPrinter(os.Stdout).PrintDiff(&diff)
	return nil
}
