package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// sub-scores below this threshold draw a recommendation
const weakScoreThreshold = 70

const maxRecommendedKeywords = 5

// recommendations maps each weak sub-score to concrete advice. A resume with
// no weak areas gets a single tailoring suggestion instead.
func recommendations(breakdown types.ScoreBreakdown, missing []types.Keyword) []string {
	var recs []string

	if breakdown.KeywordMatch < weakScoreThreshold {
		if top := importantMissing(missing); len(top) > 0 {
			recs = append(recs, fmt.Sprintf("Add these important keywords: %s", strings.Join(top, ", ")))
		}
	}
	if breakdown.TechnicalSkills < weakScoreThreshold {
		recs = append(recs, "Strengthen technical skills section with more relevant technologies and tools")
	}
	if breakdown.Experience < weakScoreThreshold {
		recs = append(recs,
			"Add more quantifiable achievements and use strong action verbs",
			"Include specific metrics and results from your experience")
	}
	if breakdown.Formatting < weakScoreThreshold {
		recs = append(recs,
			"Improve resume structure with clear sections: Summary, Experience, Education, Skills",
			"Use bullet points and consistent formatting throughout")
	}
	if breakdown.ATSCompatibility < weakScoreThreshold {
		recs = append(recs,
			"Use standard section headers that ATS systems can recognize",
			"Include more keywords naturally in your content",
			"Avoid complex formatting, tables, and special characters")
	}

	if breakdown.KeywordMatch >= 90 && breakdown.TechnicalSkills >= 90 {
		recs = append(recs, "Your resume is excellent! Consider tailoring the summary for this specific role")
	}

	return recs
}

// importantMissing returns up to five missing keyword texts whose importance
// exceeds the baseline.
func importantMissing(missing []types.Keyword) []string {
	var texts []string
	for _, kw := range missing {
		if kw.Importance <= 1.5 {
			continue
		}
		texts = append(texts, kw.Text)
		if len(texts) == maxRecommendedKeywords {
			break
		}
	}
	return texts
}
