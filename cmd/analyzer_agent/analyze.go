package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze how well a resume matches a job posting",
	Long:  "Compare a resume against a job posting: weighted match score, matched and missing keywords, detailed sub-scores, and improvement suggestions.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile  string
	analyzeJobFile     string
	analyzeJobURL      string
	analyzeCustom      []string
	analyzeUseAI       bool
	analyzeUserID      string
	analyzeSave        bool
	analyzeAPIKey      string
	analyzeDatabaseURL string
	analyzeUseBrowser  bool
	analyzeConfigFile  string
	analyzeVerbose     bool
	analyzeJSON        bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringSliceVar(&analyzeCustom, "custom", nil, "Custom keywords to add to the dictionary")
	analyzeCmd.Flags().BoolVar(&analyzeUseAI, "use-ai", false, "Enrich the dictionary with AI-suggested keywords")
	analyzeCmd.Flags().StringVar(&analyzeUserID, "user-id", "", "User UUID for stored keywords and saved analyses")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Save the analysis to the database (requires --user-id)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-heavy job pages")
	analyzeCmd.Flags().StringVar(&analyzeConfigFile, "config", "", "Path to JSON config file with flag defaults")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed output")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if err := applyAnalyzeConfig(); err != nil {
		return err
	}

	if analyzeResumeFile == "" {
		return fmt.Errorf("a resume is required (use --resume)")
	}
	if (analyzeJobFile == "") == (analyzeJobURL == "") {
		return fmt.Errorf("exactly one of --job and --job-url is required")
	}

	ctx := context.Background()

	resumeText, err := readTextFile(analyzeResumeFile)
	if err != nil {
		return err
	}

	database, err := openDatabase(ctx, analyzeDatabaseURL)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	jobText, err := resolveJobText(ctx, analyzeJobFile, analyzeJobURL, analyzeUseBrowser, analyzeVerbose, database)
	if err != nil {
		return err
	}

	snap, err := buildSnapshot(ctx, analyzeCustom, analyzeUserID, analyzeUseAI, resolveAPIKey(analyzeAPIKey), jobText, database)
	if err != nil {
		return err
	}

	result := analyzer.Analyze(resumeText, jobText, snap)

	if analyzeSave {
		if analyzeUserID == "" {
			return fmt.Errorf("--save requires --user-id")
		}
		if database == nil {
			return fmt.Errorf("--save requires a database (set DATABASE_URL or use --db-url)")
		}
		userID, err := uuid.Parse(analyzeUserID)
		if err != nil {
			return fmt.Errorf("invalid user-id: %w", err)
		}
		id, err := database.SaveAnalysis(ctx, userID, analyzeJobURL, result)
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved analysis %s\n", id)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(&result)
	printer.PrintSuggestions(result.Suggestions)
	return nil
}

// applyAnalyzeConfig merges config file values in as flag defaults.
func applyAnalyzeConfig() error {
	if analyzeConfigFile == "" {
		return nil
	}

	fileCfg, err := config.LoadConfig(analyzeConfigFile)
	if err != nil {
		return err
	}
	if err := fileCfg.Validate(); err != nil {
		return err
	}

	flags := config.Config{
		Resume:         analyzeResumeFile,
		Job:            analyzeJobFile,
		JobURL:         analyzeJobURL,
		UserID:         analyzeUserID,
		CustomKeywords: analyzeCustom,
		APIKey:         analyzeAPIKey,
		DatabaseURL:    analyzeDatabaseURL,
	}
	merged := flags.MergeWithDefaults(*fileCfg)

	analyzeResumeFile = merged.Resume
	analyzeJobFile = merged.Job
	analyzeJobURL = merged.JobURL
	analyzeUserID = merged.UserID
	analyzeCustom = merged.CustomKeywords
	analyzeAPIKey = merged.APIKey
	analyzeDatabaseURL = merged.DatabaseURL

	// Bool flags only turn features on from the config file; an explicit
	// CLI flag already set them.
	analyzeUseAI = analyzeUseAI || fileCfg.UseAI
	analyzeUseBrowser = analyzeUseBrowser || fileCfg.UseBrowser
	analyzeVerbose = analyzeVerbose || fileCfg.Verbose

	return nil
}
