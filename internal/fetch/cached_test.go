package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCachedFetcher_NilConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil, nil)
	require.NotNil(t, fetcher)
	assert.NotZero(t, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
}

func TestNewCachedFetcher_EmptyConfig(t *testing.T) {
	fetcher := NewCachedFetcher(nil, &CachedFetcherConfig{})
	require.NotNil(t, fetcher)

	// Should use defaults for zero values
	assert.NotZero(t, fetcher.cacheTTL)
	assert.NotNil(t, fetcher.options)
}

func TestCachedFetcher_NoDatabaseFetchesDirectly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Senior Go engineer wanted.</main></body></html>`))
	}))
	defer server.Close()

	fetcher := NewCachedFetcher(nil, nil)
	result, err := fetcher.JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, result.FromCache)
	assert.Contains(t, result.Text, "Senior Go engineer")
}

func TestCachedFetcher_InvalidateWithoutDatabase(t *testing.T) {
	fetcher := NewCachedFetcher(nil, nil)
	assert.NoError(t, fetcher.Invalidate(context.Background(), "https://example.com/job"))
}
