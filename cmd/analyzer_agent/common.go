package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/llm"
)

// readTextFile reads a document from disk and rejects empty files early so
// commands fail with a useful message instead of an empty analysis.
func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%s is empty", path)
	}
	return text, nil
}

// openDatabase connects when a URL is configured. A nil return with no error
// means persistence is simply not in play for this invocation.
func openDatabase(ctx context.Context, databaseURL string) (*db.DB, error) {
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, nil
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return database, nil
}

// resolveAPIKey picks the flag value over the environment.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// resolveJobText loads the job posting from a file or fetches it from a URL.
// Exactly one of jobFile and jobURL must be set; the caller validates that.
func resolveJobText(ctx context.Context, jobFile, jobURL string, useBrowser, verbose bool, database *db.DB) (string, error) {
	if jobFile != "" {
		return readTextFile(jobFile)
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = useBrowser
	opts.Verbose = verbose

	fetcher := fetch.NewCachedFetcher(database, &fetch.CachedFetcherConfig{Options: opts})
	result, err := fetcher.JobPosting(ctx, jobURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	if verbose && result.FromCache {
		fmt.Fprintf(os.Stderr, "Using cached job posting for %s\n", jobURL)
	}
	return result.Text, nil
}

// buildSnapshot assembles the dictionary for one run: built-in terms, custom
// terms from flags, the user's stored keywords, and optionally AI-suggested
// terms derived from the job posting. AI failures degrade to the static
// dictionary with a warning.
func buildSnapshot(ctx context.Context, custom []string, userID string, useAI bool, apiKey, jobText string, database *db.DB) (dictionary.Snapshot, error) {
	snap := dictionary.BuiltIn().WithCustom(dictionary.CleanCustom(custom))

	if userID != "" && database != nil {
		id, err := uuid.Parse(userID)
		if err != nil {
			return snap, fmt.Errorf("invalid user-id: %w", err)
		}
		stored, err := database.ListUserKeywords(ctx, id)
		if err != nil {
			return snap, fmt.Errorf("failed to load stored keywords: %w", err)
		}
		snap = snap.Merge(dictionary.Snapshot{Custom: db.KeywordTexts(stored)})
	}

	if useAI && jobText != "" {
		if apiKey == "" {
			return snap, fmt.Errorf("API key is required for --use-ai (set GEMINI_API_KEY or use --api-key)")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return snap, fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		suggested, err := llm.NewSuggester(client).SuggestKeywords(ctx, jobText)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: keyword suggestion failed, using static dictionary: %v\n", err)
		} else {
			snap = snap.Merge(suggested)
		}
	}

	return snap, nil
}
