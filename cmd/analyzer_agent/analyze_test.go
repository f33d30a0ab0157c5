package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAnalyzeFlags() {
	analyzeResumeFile = ""
	analyzeJobFile = ""
	analyzeJobURL = ""
	analyzeConfigFile = ""
}

func TestRunAnalyze_RequiresResume(t *testing.T) {
	resetAnalyzeFlags()

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume")
}

func TestRunAnalyze_RequiresExactlyOneJobInput(t *testing.T) {
	resetAnalyzeFlags()
	analyzeResumeFile = "resume.txt"

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	analyzeJobFile = "job.txt"
	analyzeJobURL = "https://example.com/job"
	err = runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestRunScore_ValidatesStrategy(t *testing.T) {
	scoreResumeFile = "resume.txt"
	scoreJobFile = "job.txt"
	scoreJobURL = ""
	scoreStrategy = "mystical"
	defer func() { scoreStrategy = "composite" }()

	err := runScore(scoreCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strategy")
}
