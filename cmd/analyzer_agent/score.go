package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long:  "Produce a composite resume score with a keyword, technical, experience, formatting, and ATS breakdown, plus recommendations and an optimization plan.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreJobURL     string
	scoreCustom     []string
	scoreStrategy   string
	scoreUseBrowser bool
	scorePlan       bool
	scoreVerbose    bool
	scoreJSON       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job posting text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job posting from")
	scoreCmd.Flags().StringSliceVar(&scoreCustom, "custom", nil, "Custom keywords to add to the dictionary")
	scoreCmd.Flags().StringVar(&scoreStrategy, "strategy", "composite", "Scoring strategy: composite or keyword")
	scoreCmd.Flags().BoolVar(&scoreUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-heavy job pages")
	scoreCmd.Flags().BoolVar(&scorePlan, "plan", false, "Also print a prioritized optimization plan")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed output")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print results as JSON")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	if (scoreJobFile == "") == (scoreJobURL == "") {
		return fmt.Errorf("exactly one of --job and --job-url is required")
	}
	if scoreStrategy != "composite" && scoreStrategy != "keyword" {
		return fmt.Errorf("strategy must be \"composite\" or \"keyword\"")
	}

	ctx := context.Background()

	resumeText, err := readTextFile(scoreResumeFile)
	if err != nil {
		return err
	}
	jobText, err := resolveJobText(ctx, scoreJobFile, scoreJobURL, scoreUseBrowser, scoreVerbose, nil)
	if err != nil {
		return err
	}

	snap, err := buildSnapshot(ctx, scoreCustom, "", false, "", jobText, nil)
	if err != nil {
		return err
	}

	analysis := analyzer.Analyze(resumeText, jobText, snap)
	jobKeywords := append(append([]types.Keyword{}, analysis.MatchedKeywords...), analysis.MissingKeywords...)

	scorer := scoring.ForStrategy(scoreStrategy)
	result := scorer.Score(scoring.Input{
		ResumeText:  resumeText,
		JobText:     jobText,
		Matched:     analysis.MatchedKeywords,
		Missing:     analysis.MissingKeywords,
		JobKeywords: jobKeywords,
	})

	var plan []types.OptimizationAction
	if scorePlan {
		plan = scoring.GenerateOptimizationPlan(result.Breakdown, analysis.MissingKeywords)
	}

	if scoreJSON {
		out := map[string]any{"result": result, "strategy": scorer.Name()}
		if scorePlan {
			out["plan"] = plan
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScore(&result)
	if scorePlan {
		printer.PrintPlan(plan)
	}
	return nil
}
