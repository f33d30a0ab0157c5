package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// SavedAnalysis is one stored analysis run for a user.
type SavedAnalysis struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	JobURL    *string               `json:"job_url,omitempty"`
	Score     int                   `json:"score"`
	Result    *types.ResumeAnalysis `json:"result,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// AnalysisSummary is a lightweight view of a saved analysis for listing.
type AnalysisSummary struct {
	ID        uuid.UUID `json:"id"`
	Score     int       `json:"score"`
	JobURL    *string   `json:"job_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveAnalysis stores an analysis result for a user and returns its ID.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, jobURL string, result types.ResumeAnalysis) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var urlArg *string
	if jobURL != "" {
		urlArg = &jobURL
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, job_url, score, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, urlArg, result.Score, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a saved analysis by ID. Returns nil if not found.
func (db *DB) GetAnalysis(ctx context.Context, analysisID uuid.UUID) (*SavedAnalysis, error) {
	var sa SavedAnalysis
	var resultBytes []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_url, score, result, created_at
		 FROM analyses WHERE id = $1`,
		analysisID,
	).Scan(&sa.ID, &sa.UserID, &sa.JobURL, &sa.Score, &resultBytes, &sa.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if len(resultBytes) > 0 {
		var result types.ResumeAnalysis
		if err := json.Unmarshal(resultBytes, &result); err == nil {
			sa.Result = &result
		}
	}
	return &sa, nil
}

// ListAnalyses retrieves a user's recent analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, score, job_url, created_at
		 FROM analyses WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var summaries []AnalysisSummary
	for rows.Next() {
		var s AnalysisSummary
		if err := rows.Scan(&s.ID, &s.Score, &s.JobURL, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteAnalysis removes a saved analysis owned by the given user.
func (db *DB) DeleteAnalysis(ctx context.Context, userID, analysisID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM analyses WHERE id = $1 AND user_id = $2`,
		analysisID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", analysisID)
	}
	return nil
}
