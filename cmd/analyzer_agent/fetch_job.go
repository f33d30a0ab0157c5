package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/fetch"
)

var fetchJobCmd = &cobra.Command{
	Use:   "fetch-job",
	Short: "Fetch and clean a job posting from a URL",
	Long:  "Fetch a job posting page, strip navigation and boilerplate, and print (or save) the cleaned text. Results are cached in the database when one is configured.",
	RunE:  runFetchJob,
}

var (
	fetchJobURL         string
	fetchJobOutputFile  string
	fetchJobDatabaseURL string
	fetchJobUseBrowser  bool
	fetchJobInvalidate  bool
	fetchJobVerbose     bool
)

func init() {
	fetchJobCmd.Flags().StringVarP(&fetchJobURL, "url", "u", "", "Job posting URL (required)")
	fetchJobCmd.Flags().StringVarP(&fetchJobOutputFile, "out", "o", "", "Path to write the cleaned text to (default: stdout)")
	fetchJobCmd.Flags().StringVar(&fetchJobDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	fetchJobCmd.Flags().BoolVar(&fetchJobUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-heavy job pages")
	fetchJobCmd.Flags().BoolVar(&fetchJobInvalidate, "invalidate", false, "Drop the cached copy before fetching")
	fetchJobCmd.Flags().BoolVarP(&fetchJobVerbose, "verbose", "v", false, "Print detailed output")
	_ = fetchJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(fetchJobCmd)
}

func runFetchJob(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	database, err := openDatabase(ctx, fetchJobDatabaseURL)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = fetchJobUseBrowser
	opts.Verbose = fetchJobVerbose

	fetcher := fetch.NewCachedFetcher(database, &fetch.CachedFetcherConfig{Options: opts})

	if fetchJobInvalidate {
		if err := fetcher.Invalidate(ctx, fetchJobURL); err != nil {
			return fmt.Errorf("failed to invalidate cache: %w", err)
		}
	}

	result, err := fetcher.JobPosting(ctx, fetchJobURL)
	if err != nil {
		return fmt.Errorf("failed to fetch job posting: %w", err)
	}

	if fetchJobVerbose {
		platform := fetch.DetectPlatform(fetchJobURL)
		fmt.Fprintf(os.Stderr, "Platform: %s, cached: %v, length: %d characters\n",
			platform, result.FromCache, len(result.Text))
	}

	if fetchJobOutputFile != "" {
		if err := os.WriteFile(fetchJobOutputFile, []byte(result.Text), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Wrote %d characters to %s\n", len(result.Text), fetchJobOutputFile)
		return nil
	}

	fmt.Println(result.Text)
	return nil
}
