package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  some resume text  \n"), 0644))

	text, err := readTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, "some resume text", text)
}

func TestReadTextFile_Missing(t *testing.T) {
	_, err := readTextFile("/nonexistent/resume.txt")
	assert.Error(t, err)
}

func TestReadTextFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0644))

	_, err := readTextFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestOpenDatabase_NoURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	database, err := openDatabase(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, database)
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	assert.Equal(t, "flag-key", resolveAPIKey("flag-key"))
	assert.Equal(t, "env-key", resolveAPIKey(""))
}

func TestBuildSnapshot_CustomOnly(t *testing.T) {
	snap, err := buildSnapshot(context.Background(), []string{" Terraform ", ""}, "", false, "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Terraform"}, snap.Custom)
	assert.NotEmpty(t, snap.Technical)
}

func TestBuildSnapshot_UseAIWithoutKey(t *testing.T) {
	_, err := buildSnapshot(context.Background(), nil, "", true, "", "some job text", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
