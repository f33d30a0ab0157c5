package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is how long a fetched job page stays fresh.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// JobPage is a cached fetch of a job posting URL.
type JobPage struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	RawHTML    *string   `json:"raw_html,omitempty"`
	ParsedText *string   `json:"parsed_text,omitempty"`
	HTTPStatus *int      `json:"http_status,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// GetFreshJobPage returns the cached page for a URL if it was fetched within
// ttl, or nil when absent or stale.
func (db *DB) GetFreshJobPage(ctx context.Context, url string, ttl time.Duration) (*JobPage, error) {
	var page JobPage
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, raw_html, parsed_text, http_status, fetched_at
		 FROM job_pages WHERE url = $1 AND fetched_at > NOW() - $2::interval`,
		url, ttl,
	).Scan(&page.ID, &page.URL, &page.RawHTML, &page.ParsedText, &page.HTTPStatus, &page.FetchedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached page: %w", err)
	}
	return &page, nil
}

// UpsertJobPage stores or refreshes the cached fetch for a URL.
func (db *DB) UpsertJobPage(ctx context.Context, page *JobPage) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_pages (url, raw_html, parsed_text, http_status)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (url) DO UPDATE
		 SET raw_html = $2, parsed_text = $3, http_status = $4, fetched_at = NOW()
		 RETURNING id, fetched_at`,
		page.URL, page.RawHTML, page.ParsedText, page.HTTPStatus,
	).Scan(&page.ID, &page.FetchedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert cached page: %w", err)
	}
	return nil
}

// InvalidateJobPage drops the cached fetch for a URL, forcing the next
// request to hit the network.
func (db *DB) InvalidateJobPage(ctx context.Context, url string) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM job_pages WHERE url = $1`, url); err != nil {
		return fmt.Errorf("failed to invalidate cached page: %w", err)
	}
	return nil
}
