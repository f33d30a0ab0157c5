package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	keywords := []types.Keyword{
		{Text: "React", Category: types.CategoryTechnical, Count: 3, Importance: 4},
		{Text: "leadership", Category: types.CategorySoft, Count: 1, Importance: 1.5},
	}

	p.PrintKeywords(keywords)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED KEYWORDS")
	assert.Contains(t, output, "React")
	assert.Contains(t, output, "leadership")
	assert.Contains(t, output, "importance: 4.0")
}

func TestPrintKeywords_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywords(nil)
	assert.Contains(t, buf.String(), "No keywords found")
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.ResumeAnalysis{
		Score:           82,
		MatchedKeywords: []types.Keyword{{Text: "Go"}},
		MissingKeywords: []types.Keyword{{Text: "Kubernetes"}, {Text: "Docker"}},
		Detailed: &types.DetailedAnalysis{
			TechnicalMatch:  75,
			SoftSkillsMatch: 100,
			ATSScore:        80,
			OverallFit:      types.FitGood,
		},
	}

	p.PrintAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "RESUME ANALYSIS")
	assert.Contains(t, output, "82/100")
	assert.Contains(t, output, "Kubernetes")
	assert.Contains(t, output, "good")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScoringResult{
		OverallScore: 73,
		Breakdown: types.ScoreBreakdown{
			KeywordMatch:     80,
			TechnicalSkills:  70,
			Experience:       65,
			Formatting:       90,
			ATSCompatibility: 60,
		},
		Recommendations: []string{"Use standard section headers that ATS systems can recognize"},
		Rank:            types.RankGood,
	}

	p.PrintScore(result)
	output := buf.String()

	assert.Contains(t, output, "RESUME SCORE")
	assert.Contains(t, output, "73/100")
	assert.Contains(t, output, "Good")
	assert.Contains(t, output, "SUGGESTIONS")
	assert.Contains(t, output, "section headers")
}

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := []types.OptimizationAction{
		{Priority: types.PriorityHigh, Action: "Add Python to your resume", Impact: "+15-20 points"},
		{Priority: types.PriorityLow, Action: "Improve formatting", Impact: "+5-8 points"},
	}

	p.PrintPlan(plan)
	output := buf.String()

	assert.Contains(t, output, "OPTIMIZATION PLAN")
	assert.Contains(t, output, "[High]")
	assert.Contains(t, output, "Add Python")
}

func TestPrintPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlan(nil)
	assert.Contains(t, buf.String(), "Nothing to improve")
}

func TestPrintDiff(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	diff := &types.VersionDiff{
		KeywordsAdded:   []string{"TypeScript"},
		KeywordsRemoved: []string{"jQuery"},
		LengthChange:    42,
		ScoreChange:     1,
	}

	p.PrintDiff(diff)
	output := buf.String()

	assert.Contains(t, output, "VERSION COMPARISON")
	assert.Contains(t, output, "TypeScript")
	assert.Contains(t, output, "jQuery")
	assert.Contains(t, output, "+42 words")
}
