package extractor

import (
	"fmt"
	"regexp"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// importanceFloor is the minimum importance emitted for any detected keyword.
const importanceFloor = 0.1

// triggerBonus pairs a requirement phrasing with its importance bonus.
// The term may appear anywhere after the trigger word, not necessarily
// adjacent: the search is an unanchored substring match within a line.
// Known imprecision: a trigger and a term in unrelated clauses of the same
// line still earn the bonus. Kept as-is; existing fixtures depend on it.
type triggerBonus struct {
	// format receives the quoted term and yields the full pattern.
	format string
	bonus  float64
}

var triggerBonuses = []triggerBonus{
	{format: `(?i)required.*%s`, bonus: 3},
	{format: `(?i)must have.*%s`, bonus: 3},
	{format: `(?i)essential.*%s`, bonus: 2.5},
	{format: `(?i)%s.*experience`, bonus: 2},
	{format: `(?i)proficient.*%s`, bonus: 2},
	{format: `(?i)expert.*%s`, bonus: 2},
	{format: `(?i)strong.*%s`, bonus: 1.5},
}

// categoryBonus returns the flat bonus applied for a keyword's category.
func categoryBonus(category types.Category) float64 {
	switch category {
	case types.CategoryTechnical:
		return 1
	case types.CategoryCertification:
		return 1.5
	case types.CategoryCustom:
		return 0.5
	case types.CategorySoft, types.CategoryTool, types.CategoryOther:
		return 0
	default:
		return 0
	}
}

// computeImportance applies the rule-based weighting for one detected term.
// The score starts at 1, accumulates trigger and category bonuses plus a
// prominence bonus when the term occurs in the first third of the document's
// non-blank lines, and never drops below importanceFloor.
func computeImportance(term string, category types.Category, text string, wordPattern *regexp.Regexp, lead string) float64 {
	score := 1.0

	quoted := regexp.QuoteMeta(term)
	for _, tb := range triggerBonuses {
		re, err := regexp.Compile(fmt.Sprintf(tb.format, quoted))
		if err != nil {
			continue
		}
		if re.MatchString(text) {
			score += tb.bonus
		}
	}

	score += categoryBonus(category)

	if lead != "" && wordPattern.MatchString(lead) {
		score++
	}

	if score < importanceFloor {
		return importanceFloor
	}
	return score
}
