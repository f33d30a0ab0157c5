package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/features"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// GenerateOptimizationPlan turns a score breakdown into prioritized actions,
// highest priority first. The sort is stable so actions keep their relative
// order within a priority.
func GenerateOptimizationPlan(breakdown types.ScoreBreakdown, missing []types.Keyword) []types.OptimizationAction {
	var plan []types.OptimizationAction

	if breakdown.KeywordMatch < 60 {
		texts := make([]string, 0, maxRecommendedKeywords)
		for _, kw := range missing {
			texts = append(texts, kw.Text)
			if len(texts) == maxRecommendedKeywords {
				break
			}
		}
		plan = append(plan, types.OptimizationAction{
			Priority: types.PriorityHigh,
			Action:   fmt.Sprintf("Add %s to your resume", strings.Join(texts, ", ")),
			Impact:   "+15-20 points",
		})
	}
	if breakdown.TechnicalSkills < 60 {
		plan = append(plan, types.OptimizationAction{
			Priority: types.PriorityHigh,
			Action:   "Expand technical skills section with project examples",
			Impact:   "+10-15 points",
		})
	}
	if breakdown.Experience < 70 {
		plan = append(plan, types.OptimizationAction{
			Priority: types.PriorityMedium,
			Action:   "Add quantifiable metrics to your achievements",
			Impact:   "+8-12 points",
		})
	}
	if breakdown.ATSCompatibility < 70 {
		plan = append(plan, types.OptimizationAction{
			Priority: types.PriorityMedium,
			Action:   "Restructure with standard ATS-friendly section headers",
			Impact:   "+10-15 points",
		})
	}
	if breakdown.Formatting < 70 {
		plan = append(plan, types.OptimizationAction{
			Priority: types.PriorityLow,
			Action:   "Improve formatting consistency and add bullet points",
			Impact:   "+5-8 points",
		})
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].Priority.Before(plan[j].Priority)
	})
	return plan
}

// ResumeVersion pairs a document with its extracted keywords for comparison.
type ResumeVersion struct {
	Text     string
	Keywords []types.Keyword
}

// CompareVersions diffs two resume versions: keywords gained and lost, word
// count change, and the change in distinct keyword count as a coarse score
// delta.
func CompareVersions(before, after ResumeVersion) types.VersionDiff {
	beforeSet := keywordSet(before.Keywords)
	afterSet := keywordSet(after.Keywords)

	added := []string{}
	for _, kw := range after.Keywords {
		if !beforeSet[strings.ToLower(kw.Text)] {
			added = append(added, kw.Text)
		}
	}
	removed := []string{}
	for _, kw := range before.Keywords {
		if !afterSet[strings.ToLower(kw.Text)] {
			removed = append(removed, kw.Text)
		}
	}

	return types.VersionDiff{
		KeywordsAdded:   added,
		KeywordsRemoved: removed,
		LengthChange:    features.WordCount(after.Text) - features.WordCount(before.Text),
		ScoreChange:     len(after.Keywords) - len(before.Keywords),
	}
}
