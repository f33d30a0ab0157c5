package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	maxTechnicalSuggestions = 3
	maxSoftSuggestions      = 2
)

// buildSuggestions turns the score and the missing-keyword list into
// display-ready advice, most impactful first.
func buildSuggestions(score int, missing []types.Keyword) []string {
	suggestions := []string{headlineFor(score)}

	if tech := topMissing(missing, types.CategoryTechnical, maxTechnicalSuggestions); len(tech) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Add these technical skills if you have them: %s.", strings.Join(tech, ", ")))
	}
	if soft := topMissing(missing, types.CategorySoft, maxSoftSuggestions); len(soft) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Work soft skills like %s into your experience bullets.", strings.Join(soft, ", ")))
	}
	if certs := topMissing(missing, types.CategoryCertification, maxTechnicalSuggestions); len(certs) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"The posting mentions credentials you don't list: %s.", strings.Join(certs, ", ")))
	}

	suggestions = append(suggestions,
		"Quantify achievements with numbers where you can.",
		"Start experience bullets with strong action verbs.")
	return suggestions
}

func headlineFor(score int) string {
	switch {
	case score >= 85:
		return "Strong match. Fine-tune wording to mirror the posting's phrasing."
	case score >= 75:
		return "Good match. Closing a few keyword gaps would make it stronger."
	case score >= 50:
		return "Moderate match. Tailor your resume to this posting's key requirements."
	default:
		return "Low match. Consider significant tailoring before applying."
	}
}

// topMissing returns up to limit missing keyword texts in the given
// category, highest importance first.
func topMissing(missing []types.Keyword, category types.Category, limit int) []string {
	var candidates []types.Keyword
	for _, kw := range missing {
		if kw.Category == category {
			candidates = append(candidates, kw)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Importance > candidates[j].Importance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	texts := make([]string, len(candidates))
	for i, kw := range candidates {
		texts[i] = kw.Text
	}
	return texts
}
