package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const scoringResume = `Jane Doe
jane@example.com, 555-123-4567

EXPERIENCE
Senior engineer with 6 years of experience.
- Developed a React dashboard, improved load time by 40%
- Led migration to TypeScript across three teams
- Built and launched AWS infrastructure, reduced costs by $50000

EDUCATION
Bachelor of Science, 2018

SKILLS
React, TypeScript, AWS`

const scoringJob = `We require 5+ years of experience.
React required. TypeScript essential. AWS must have.`

func scoringInput() Input {
	jobKeywords := []types.Keyword{
		{Text: "React", Category: types.CategoryTechnical, Importance: 4},
		{Text: "TypeScript", Category: types.CategoryTechnical, Importance: 3.5},
		{Text: "AWS", Category: types.CategoryTechnical, Importance: 4},
	}
	return Input{
		ResumeText:  scoringResume,
		JobText:     scoringJob,
		Matched:     jobKeywords,
		Missing:     []types.Keyword{},
		JobKeywords: jobKeywords,
	}
}

func TestCompositeScorer_StrongResume(t *testing.T) {
	result := CompositeScorer{}.Score(scoringInput())

	assert.Equal(t, 100, result.Breakdown.KeywordMatch)
	assert.Equal(t, 100, result.Breakdown.TechnicalSkills)
	assert.GreaterOrEqual(t, result.OverallScore, 85)
	assert.Equal(t, types.RankExcellent, result.Rank)
}

func TestCompositeScorer_OverallIsWeightedBlend(t *testing.T) {
	in := scoringInput()
	result := CompositeScorer{}.Score(in)

	b := result.Breakdown
	expected := int(0.5 + float64(b.KeywordMatch)*0.30 +
		float64(b.TechnicalSkills)*0.25 +
		float64(b.Experience)*0.20 +
		float64(b.Formatting)*0.10 +
		float64(b.ATSCompatibility)*0.15)
	assert.Equal(t, expected, result.OverallScore)
}

func TestCompositeScorer_NoMatches(t *testing.T) {
	jobKeywords := []types.Keyword{
		{Text: "Python", Category: types.CategoryTechnical, Importance: 4},
		{Text: "Docker", Category: types.CategoryTechnical, Importance: 3},
	}
	in := Input{
		ResumeText:  "A short note about cooking.",
		JobText:     scoringJob,
		Matched:     []types.Keyword{},
		Missing:     jobKeywords,
		JobKeywords: jobKeywords,
	}

	result := CompositeScorer{}.Score(in)
	assert.Equal(t, 0, result.Breakdown.KeywordMatch)
	assert.Equal(t, 0, result.Breakdown.TechnicalSkills)
	assert.Equal(t, types.RankPoor, result.Rank)
	assert.NotEmpty(t, result.Recommendations)
}

func TestKeywordMatchScore_WeightsByImportance(t *testing.T) {
	jobKeywords := []types.Keyword{
		{Text: "React", Importance: 4},
		{Text: "Vim", Importance: 1},
	}
	matched := []types.Keyword{{Text: "react", Importance: 4}}

	// 4 of 5 total importance matched, case-insensitively.
	assert.Equal(t, 80, keywordMatchScore(matched, jobKeywords))
}

func TestKeywordMatchScore_EmptyJob(t *testing.T) {
	assert.Equal(t, 100, keywordMatchScore(nil, nil))
}

func TestKeywordMatchScore_ZeroImportanceDefaultsToOne(t *testing.T) {
	jobKeywords := []types.Keyword{{Text: "Go"}, {Text: "SQL"}}
	matched := []types.Keyword{{Text: "Go"}}
	assert.Equal(t, 50, keywordMatchScore(matched, jobKeywords))
}

func TestTechnicalSkillsScore_CriticalBonus(t *testing.T) {
	jobKeywords := []types.Keyword{
		{Text: "React", Category: types.CategoryTechnical, Importance: 4},
		{Text: "Vue", Category: types.CategoryTechnical, Importance: 1},
	}

	// Half the technical keywords matched, including the critical one:
	// 50*0.8 + 20 = 60.
	matched := []types.Keyword{{Text: "React", Category: types.CategoryTechnical, Importance: 4}}
	assert.Equal(t, 60, technicalSkillsScore(matched, jobKeywords))

	// Same match rate but the critical keyword missed: 50*0.8 + 0 = 40.
	matched = []types.Keyword{{Text: "Vue", Category: types.CategoryTechnical, Importance: 1}}
	assert.Equal(t, 40, technicalSkillsScore(matched, jobKeywords))
}

func TestTechnicalSkillsScore_NoTechnicalKeywords(t *testing.T) {
	jobKeywords := []types.Keyword{{Text: "teamwork", Category: types.CategorySoft}}
	assert.Equal(t, 100, technicalSkillsScore(nil, jobKeywords))
}

func TestExperienceScore_MeetsRequirement(t *testing.T) {
	meets := experienceScore("8 years of experience. Led, developed, built things.", "5+ years of experience required.")
	falls := experienceScore("2 years of experience. Led, developed, built things.", "5+ years of experience required.")
	assert.Greater(t, meets, falls)
}

func TestExperienceScore_NeutralBaseline(t *testing.T) {
	assert.Equal(t, 50, experienceScore("plain text with no signals", "plain posting"))
}

func TestFormattingScore_RangesAndSignals(t *testing.T) {
	score := formattingScore(scoringResume)
	assert.Greater(t, score, 50)
	assert.LessOrEqual(t, score, 100)

	// Bare text still earns capitalization and no-space-runs points.
	low := formattingScore("tiny")
	assert.Less(t, low, 30)
}

func TestATSCompatibilityScore_PenalizesTablesAndUnicode(t *testing.T) {
	clean := atsCompatibilityScore(scoringResume, scoringInput().Matched)
	piped := atsCompatibilityScore(scoringResume+"\ncol1 | col2 | col3", scoringInput().Matched)
	assert.Greater(t, clean, piped)
}

func TestRecommendations_WeakAreasAndStrongCase(t *testing.T) {
	weak := types.ScoreBreakdown{KeywordMatch: 40, TechnicalSkills: 50, Experience: 60, Formatting: 55, ATSCompatibility: 65}
	missing := []types.Keyword{{Text: "Python", Importance: 4}}

	recs := recommendations(weak, missing)
	assert.Contains(t, recs[0], "Python")
	assert.GreaterOrEqual(t, len(recs), 5)

	strong := types.ScoreBreakdown{KeywordMatch: 95, TechnicalSkills: 92, Experience: 90, Formatting: 90, ATSCompatibility: 90}
	recs = recommendations(strong, nil)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "tailoring")
}

func TestGenerateOptimizationPlan_PriorityOrder(t *testing.T) {
	breakdown := types.ScoreBreakdown{KeywordMatch: 30, TechnicalSkills: 40, Experience: 50, Formatting: 50, ATSCompatibility: 50}
	missing := []types.Keyword{{Text: "Python"}, {Text: "Go"}}

	plan := GenerateOptimizationPlan(breakdown, missing)
	require.NotEmpty(t, plan)

	for i := 1; i < len(plan); i++ {
		assert.False(t, plan[i].Priority.Before(plan[i-1].Priority),
			"plan not sorted at index %d", i)
	}
	assert.Equal(t, types.PriorityHigh, plan[0].Priority)
	assert.Contains(t, plan[0].Action, "Python")
}

func TestGenerateOptimizationPlan_HealthyBreakdownIsEmpty(t *testing.T) {
	breakdown := types.ScoreBreakdown{KeywordMatch: 90, TechnicalSkills: 90, Experience: 90, Formatting: 90, ATSCompatibility: 90}
	assert.Empty(t, GenerateOptimizationPlan(breakdown, nil))
}

func TestCompareVersions(t *testing.T) {
	before := ResumeVersion{
		Text:     "one two three",
		Keywords: []types.Keyword{{Text: "React"}, {Text: "Vue"}},
	}
	after := ResumeVersion{
		Text:     "one two three four five",
		Keywords: []types.Keyword{{Text: "React"}, {Text: "TypeScript"}, {Text: "AWS"}},
	}

	diff := CompareVersions(before, after)
	assert.ElementsMatch(t, []string{"TypeScript", "AWS"}, diff.KeywordsAdded)
	assert.ElementsMatch(t, []string{"Vue"}, diff.KeywordsRemoved)
	assert.Equal(t, 2, diff.LengthChange)
	assert.Equal(t, 1, diff.ScoreChange)
}

func TestForStrategy(t *testing.T) {
	assert.Equal(t, "keyword", ForStrategy("keyword").Name())
	assert.Equal(t, "composite", ForStrategy("composite").Name())
	assert.Equal(t, "composite", ForStrategy("").Name())
}

func TestKeywordScorer_IgnoresDocumentSignals(t *testing.T) {
	in := scoringInput()
	in.ResumeText = ""
	in.JobText = ""

	result := KeywordScorer{}.Score(in)
	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, 0, result.Breakdown.Formatting)
	assert.Equal(t, 0, result.Breakdown.ATSCompatibility)
}
