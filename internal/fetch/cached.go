// Package fetch - cached.go wraps job posting fetches with database-backed caching.
package fetch

import (
	"context"
	"time"

	"github.com/jonathan/resume-analyzer/internal/db"
)

// CachedFetcher wraps job posting fetching with database-backed caching, so
// repeated analyses of the same posting don't hammer the job board.
type CachedFetcher struct {
	db        *db.DB
	options   *Options
	cacheTTL  time.Duration
	skipCache bool // For testing or forcing fresh fetches
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// NewCachedFetcher creates a new cached fetcher. A nil database disables
// caching entirely; every fetch goes to the network.
func NewCachedFetcher(database *db.DB, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultPageCacheTTL
	}
	return &CachedFetcher{
		db:        database,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends a fetch with cache metadata.
type CachedResult struct {
	Text      string
	FromCache bool
}

// JobPosting returns the posting text for a URL, from cache when fresh.
func (f *CachedFetcher) JobPosting(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache && f.db != nil {
		cached, err := f.db.GetFreshJobPage(ctx, urlStr, f.cacheTTL)
		if err != nil {
			return nil, err
		}
		if cached != nil && cached.ParsedText != nil {
			return &CachedResult{Text: *cached.ParsedText, FromCache: true}, nil
		}
	}

	text, err := JobPosting(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	if f.db != nil {
		status := 200
		page := &db.JobPage{
			URL:        urlStr,
			ParsedText: &text,
			HTTPStatus: &status,
		}
		// A cache write failure never fails the fetch.
		_ = f.db.UpsertJobPage(ctx, page)
	}

	return &CachedResult{Text: text, FromCache: false}, nil
}

// Invalidate drops the cache entry for a URL.
func (f *CachedFetcher) Invalidate(ctx context.Context, urlStr string) error {
	if f.db == nil {
		return nil
	}
	return f.db.InvalidateJobPage(ctx, urlStr)
}
