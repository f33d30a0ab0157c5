// Package analyzer compares a resume against a job posting and produces a
// weighted match score, keyword partition, and display-ready suggestions.
package analyzer

import (
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/extractor"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// emptyInputSuggestion is returned when either document is missing.
const emptyInputSuggestion = "Provide both a resume and a job posting to run an analysis."

// Analyze compares resumeText against jobText using the given dictionary
// snapshot. The same snapshot is used for both documents so the comparison
// is symmetric. Empty input yields a zero-valued analysis with a placeholder
// suggestion; Analyze never fails.
func Analyze(resumeText, jobText string, snap dictionary.Snapshot) types.ResumeAnalysis {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return types.ResumeAnalysis{
			Score:           0,
			MatchedKeywords: []types.Keyword{},
			MissingKeywords: []types.Keyword{},
			Suggestions:     []string{emptyInputSuggestion},
		}
	}

	// The two documents are independent; extract them concurrently.
	var resumeKeywords, jobKeywords []types.Keyword
	g := new(errgroup.Group)
	g.Go(func() error {
		resumeKeywords = extractor.Extract(resumeText, snap)
		return nil
	})
	g.Go(func() error {
		jobKeywords = extractor.Extract(jobText, snap)
		return nil
	})
	_ = g.Wait() // extraction never returns an error

	matched, missing := partition(jobKeywords, resumeKeywords)
	score := weightedScore(matched, jobKeywords)
	detailed := buildDetailed(resumeText, jobText, matched, jobKeywords)

	return types.ResumeAnalysis{
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Suggestions:     buildSuggestions(score, missing),
		Detailed:        detailed,
	}
}

// partition splits the job posting's keywords into matched and missing by
// case-insensitive text membership in the resume's keyword set. Every job
// keyword lands in exactly one of the two lists. Matched entries report the
// resume's occurrence count rather than the job posting's.
func partition(jobKeywords, resumeKeywords []types.Keyword) (matched, missing []types.Keyword) {
	resumeCounts := make(map[string]int, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		key := strings.ToLower(kw.Text)
		if _, ok := resumeCounts[key]; !ok {
			resumeCounts[key] = kw.Count
		}
	}

	matched = []types.Keyword{}
	missing = []types.Keyword{}
	for _, kw := range jobKeywords {
		if count, ok := resumeCounts[strings.ToLower(kw.Text)]; ok {
			kw.Count = count
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return matched, missing
}

// weightedScore is the importance-weighted match ratio as an integer
// percentage. A job posting with no keywords scores zero.
func weightedScore(matched, jobKeywords []types.Keyword) int {
	if len(jobKeywords) == 0 {
		return 0
	}

	total := 0.0
	for _, kw := range jobKeywords {
		total += kw.Importance
	}
	if total == 0 {
		return 0
	}

	matchedWeight := 0.0
	for _, kw := range matched {
		matchedWeight += kw.Importance
	}

	return int(math.Round(matchedWeight / total * 100))
}
