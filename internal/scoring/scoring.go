// Package scoring computes multi-factor resume scores against a job posting.
package scoring

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights for the composite score components
const (
	keywordMatchWeight     = 0.30
	technicalSkillsWeight  = 0.25
	experienceWeight       = 0.20
	formattingWeight       = 0.10
	atsCompatibilityWeight = 0.15
)

// Input carries everything a scorer needs: the two documents plus the
// keyword partition already produced by the analyzer.
type Input struct {
	ResumeText  string
	JobText     string
	Matched     []types.Keyword
	Missing     []types.Keyword
	JobKeywords []types.Keyword
}

// Scorer scores a resume against a job posting.
type Scorer interface {
	Score(in Input) types.ScoringResult
	Name() string
}

// CompositeScorer is the default strategy: five weighted sub-scores
// covering keywords, technical skills, experience, formatting, and ATS
// compatibility.
type CompositeScorer struct{}

func (CompositeScorer) Name() string { return "composite" }

func (CompositeScorer) Score(in Input) types.ScoringResult {
	breakdown := types.ScoreBreakdown{
		KeywordMatch:     keywordMatchScore(in.Matched, in.JobKeywords),
		TechnicalSkills:  technicalSkillsScore(in.Matched, in.JobKeywords),
		Experience:       experienceScore(in.ResumeText, in.JobText),
		Formatting:       formattingScore(in.ResumeText),
		ATSCompatibility: atsCompatibilityScore(in.ResumeText, in.Matched),
	}

	overall := int(math.Round(
		float64(breakdown.KeywordMatch)*keywordMatchWeight +
			float64(breakdown.TechnicalSkills)*technicalSkillsWeight +
			float64(breakdown.Experience)*experienceWeight +
			float64(breakdown.Formatting)*formattingWeight +
			float64(breakdown.ATSCompatibility)*atsCompatibilityWeight))

	return types.ScoringResult{
		OverallScore:    overall,
		Breakdown:       breakdown,
		Recommendations: recommendations(breakdown, in.Missing),
		Rank:            types.RankFor(overall),
	}
}

// KeywordScorer is a lightweight strategy that considers only the
// importance-weighted keyword match. Useful when the caller has keywords but
// not full document text, or wants a quick pre-screen.
type KeywordScorer struct{}

func (KeywordScorer) Name() string { return "keyword" }

func (KeywordScorer) Score(in Input) types.ScoringResult {
	match := keywordMatchScore(in.Matched, in.JobKeywords)
	breakdown := types.ScoreBreakdown{
		KeywordMatch:    match,
		TechnicalSkills: technicalSkillsScore(in.Matched, in.JobKeywords),
	}

	return types.ScoringResult{
		OverallScore:    match,
		Breakdown:       breakdown,
		Recommendations: recommendations(breakdown, in.Missing),
		Rank:            types.RankFor(match),
	}
}

// ForStrategy returns the scorer registered under the given name, falling
// back to the composite scorer for unknown names.
func ForStrategy(name string) Scorer {
	if name == "keyword" {
		return KeywordScorer{}
	}
	return CompositeScorer{}
}
