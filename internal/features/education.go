package features

import (
	"regexp"
	"strings"
)

const (
	// maxEducationRequirements caps the clauses returned.
	maxEducationRequirements = 5
	// maxEducationClauseLength truncates each clause.
	maxEducationClauseLength = 199
)

// degreeKeywords are the degree-level terms that mark an education clause.
var degreeKeywords = []string{
	"Bachelor", "Master", "PhD", "Doctorate", "Associate", "MBA", "degree",
}

// EducationRequirements returns the deduplicated sentence clauses mentioning
// a degree-level keyword, capped and truncated for display.
func EducationRequirements(text string) []string {
	var requirements []string
	seen := make(map[string]bool)

	for _, keyword := range degreeKeywords {
		pattern, err := regexp.Compile(`(?i)[^.!?\n]*` + regexp.QuoteMeta(keyword) + `[^.!?\n]*`)
		if err != nil {
			continue
		}
		for _, match := range pattern.FindAllString(text, -1) {
			clause := strings.TrimSpace(match)
			if clause == "" {
				continue
			}
			if len(clause) > maxEducationClauseLength {
				clause = clause[:maxEducationClauseLength]
			}
			key := strings.ToLower(clause)
			if seen[key] {
				continue
			}
			seen[key] = true
			requirements = append(requirements, clause)
			if len(requirements) >= maxEducationRequirements {
				return requirements
			}
		}
	}

	return requirements
}
