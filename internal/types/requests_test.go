package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRequest_Validate(t *testing.T) {
	req := &ExtractRequest{Text: "Senior Go engineer wanted"}
	assert.NoError(t, req.Validate())

	empty := &ExtractRequest{}
	assert.Error(t, empty.Validate())
}

func TestAnalyzeRequest_Validate_ResumeTooShort(t *testing.T) {
	req := &AnalyzeRequest{
		ResumeText: "too short",
		JobText:    "Go developer",
	}
	assert.Error(t, req.Validate())
}

func TestAnalyzeRequest_Validate_JobTextTooLong(t *testing.T) {
	req := &AnalyzeRequest{
		ResumeText: strings.Repeat("experience ", 20),
		JobText:    strings.Repeat("x", MaxJobTextLength+1),
	}
	assert.Error(t, req.Validate())
}

func TestAnalyzeRequest_Validate_OK(t *testing.T) {
	req := &AnalyzeRequest{
		ResumeText: strings.Repeat("built and shipped services in Go ", 10),
		JobText:    "Looking for a Go developer with Kubernetes experience",
	}
	assert.NoError(t, req.Validate())
}

func TestAnalyzeRequest_Validate_BadUserID(t *testing.T) {
	req := &AnalyzeRequest{
		ResumeText: strings.Repeat("shipped production systems ", 10),
		JobText:    "Go developer",
		UserID:     "not-a-uuid",
	}
	assert.Error(t, req.Validate())
}

func TestAddKeywordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AddKeywordRequest{Keyword: "GraphQL"}).Validate())
	assert.Error(t, (&AddKeywordRequest{}).Validate())
	assert.Error(t, (&AddKeywordRequest{Keyword: strings.Repeat("k", 101)}).Validate())
}
