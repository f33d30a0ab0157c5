package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxKeywordLength bounds a single custom keyword.
const MaxKeywordLength = 100

// UserKeyword is one custom dictionary term owned by a user.
type UserKeyword struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Keyword   string    `json:"keyword"`
	CreatedAt time.Time `json:"created_at"`
}

// ListUserKeywords returns a user's custom keywords, oldest first.
func (db *DB) ListUserKeywords(ctx context.Context, userID uuid.UUID) ([]UserKeyword, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, keyword, created_at
		 FROM user_keywords WHERE user_id = $1 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list user keywords: %w", err)
	}
	defer rows.Close()

	var keywords []UserKeyword
	for rows.Next() {
		var kw UserKeyword
		if err := rows.Scan(&kw.ID, &kw.UserID, &kw.Keyword, &kw.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user keyword: %w", err)
		}
		keywords = append(keywords, kw)
	}
	return keywords, nil
}

// AddUserKeyword stores a custom keyword for a user. Duplicate terms
// (case-insensitive) are ignored and return the existing record's keyword
// unchanged; the caller cannot distinguish the two cases and should not
// need to.
func (db *DB) AddUserKeyword(ctx context.Context, userID uuid.UUID, keyword string) (*UserKeyword, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("keyword must not be empty")
	}
	if len(keyword) > MaxKeywordLength {
		return nil, fmt.Errorf("keyword exceeds %d characters", MaxKeywordLength)
	}

	var kw UserKeyword
	err := db.pool.QueryRow(ctx,
		`INSERT INTO user_keywords (user_id, keyword)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, LOWER(keyword)) DO UPDATE SET keyword = user_keywords.keyword
		 RETURNING id, user_id, keyword, created_at`,
		userID, keyword,
	).Scan(&kw.ID, &kw.UserID, &kw.Keyword, &kw.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add user keyword: %w", err)
	}
	return &kw, nil
}

// DeleteUserKeyword removes one of a user's custom keywords by ID.
func (db *DB) DeleteUserKeyword(ctx context.Context, userID, keywordID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM user_keywords WHERE id = $1 AND user_id = $2`,
		keywordID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete user keyword: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("keyword not found: %s", keywordID)
	}
	return nil
}

// KeywordTexts extracts the bare terms from a keyword list, for merging into
// a dictionary snapshot.
func KeywordTexts(keywords []UserKeyword) []string {
	texts := make([]string, len(keywords))
	for i, kw := range keywords {
		texts[i] = kw.Keyword
	}
	return texts
}
