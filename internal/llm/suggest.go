// Package llm - suggest.go provides AI-backed keyword suggestion for job postings.
package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/schemas"
)

const suggestPromptTemplate = `Analyze the following job posting and extract relevant keywords in JSON format.

Job Posting:
%s

Return a JSON object with this exact structure:
{
  "technical": ["technical skills like programming languages, frameworks, databases"],
  "soft": ["soft skills like communication, leadership, teamwork"],
  "tools": ["tools and software like IDEs, design tools, project management tools"],
  "certifications": ["certifications or education requirements"]
}

Only return valid JSON, no additional text.`

// suggestionPayload mirrors the JSON shape the model is asked for.
type suggestionPayload struct {
	Technical      []string `json:"technical"`
	Soft           []string `json:"soft"`
	Tools          []string `json:"tools"`
	Certifications []string `json:"certifications"`
}

// Suggester asks an LLM for dictionary terms tailored to one job posting.
type Suggester struct {
	client Client
}

// NewSuggester creates a suggester backed by the given client.
func NewSuggester(client Client) *Suggester {
	return &Suggester{client: client}
}

// SuggestKeywords extracts category term lists from a job posting. The
// response is schema-validated before use so a malformed model reply can
// never poison the dictionary. Callers merge the returned snapshot into the
// built-in one and should treat an error as "proceed without suggestions".
func (s *Suggester) SuggestKeywords(ctx context.Context, jobText string) (dictionary.Snapshot, error) {
	prompt := fmt.Sprintf(suggestPromptTemplate, jobText)

	raw, err := s.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return dictionary.Snapshot{}, fmt.Errorf("failed to generate keyword suggestions: %w", err)
	}

	if err := schemas.ValidateKeywordSuggestions(raw); err != nil {
		return dictionary.Snapshot{}, fmt.Errorf("keyword suggestion response rejected: %w", err)
	}

	var payload suggestionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return dictionary.Snapshot{}, fmt.Errorf("failed to parse keyword suggestions: %w", err)
	}

	return dictionary.Snapshot{
		Technical:      dictionary.CleanCustom(payload.Technical),
		Soft:           dictionary.CleanCustom(payload.Soft),
		Tools:          dictionary.CleanCustom(payload.Tools),
		Certifications: dictionary.CleanCustom(payload.Certifications),
	}, nil
}
