// Package features provides auxiliary text extraction for resumes and job
// postings: experience mentions, education requirements, salary ranges,
// action verbs, section boundaries, and readability metrics. Every function
// is a pure transform with no shared state.
package features

import (
	"regexp"
	"strconv"
)

// maxPlausibleYears bounds years-of-experience mentions; larger numbers are
// treated as noise (dates, IDs).
const maxPlausibleYears = 50

var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`(?i)experience\s+(?:of\s+)?(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*yrs?\s+experience`),
}

// YearsOfExperience returns the largest plausible years-of-experience figure
// mentioned in the text, or nil when none is found.
func YearsOfExperience(text string) *int {
	best := -1
	for _, pattern := range yearsPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if n < 0 || n > maxPlausibleYears {
				continue
			}
			if n > best {
				best = n
			}
		}
	}
	if best < 0 {
		return nil
	}
	return &best
}
