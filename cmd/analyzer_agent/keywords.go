package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/db"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Manage a user's custom dictionary keywords",
}

var keywordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's custom keywords",
	RunE:  runKeywordsList,
}

var keywordsAddCmd = &cobra.Command{
	Use:   "add <keyword>",
	Short: "Add a custom keyword for a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeywordsAdd,
}

var keywordsRemoveCmd = &cobra.Command{
	Use:   "remove <keyword-id>",
	Short: "Remove one of a user's custom keywords by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeywordsRemove,
}

var (
	keywordsUserID      string
	keywordsDatabaseURL string
)

func init() {
	keywordsCmd.PersistentFlags().StringVar(&keywordsUserID, "user-id", "", "User UUID (required)")
	keywordsCmd.PersistentFlags().StringVar(&keywordsDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	_ = keywordsCmd.MarkPersistentFlagRequired("user-id")

	keywordsCmd.AddCommand(keywordsListCmd)
	keywordsCmd.AddCommand(keywordsAddCmd)
	keywordsCmd.AddCommand(keywordsRemoveCmd)
	rootCmd.AddCommand(keywordsCmd)
}

// keywordsDB resolves the user ID and opens the database, which is mandatory
// for every keywords subcommand.
func keywordsDB(ctx context.Context) (*db.DB, uuid.UUID, error) {
	userID, err := uuid.Parse(keywordsUserID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("invalid user-id: %w", err)
	}

	database, err := openDatabase(ctx, keywordsDatabaseURL)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if database == nil {
		return nil, uuid.Nil, fmt.Errorf("a database is required (set DATABASE_URL or use --db-url)")
	}
	return database, userID, nil
}

func runKeywordsList(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, userID, err := keywordsDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	keywords, err := database.ListUserKeywords(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list keywords: %w", err)
	}

	if len(keywords) == 0 {
		fmt.Println("No custom keywords.")
		return nil
	}
	for _, kw := range keywords {
		fmt.Printf("%s  %s\n", kw.ID, kw.Keyword)
	}
	return nil
}

func runKeywordsAdd(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	database, userID, err := keywordsDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	kw, err := database.AddUserKeyword(ctx, userID, args[0])
	if err != nil {
		return fmt.Errorf("failed to add keyword: %w", err)
	}

	fmt.Printf("Added keyword %q (%s)\n", kw.Keyword, kw.ID)
	return nil
}

func runKeywordsRemove(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	database, userID, err := keywordsDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	keywordID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid keyword-id: %w", err)
	}

	if err := database.DeleteUserKeyword(ctx, userID, keywordID); err != nil {
		return fmt.Errorf("failed to remove keyword: %w", err)
	}

	fmt.Printf("Removed keyword %s\n", keywordID)
	return nil
}
