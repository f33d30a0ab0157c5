package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/features"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// importance above this marks a keyword as critical to the posting
const criticalImportance = 2.0

var (
	emailRe      = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phoneRe      = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
	sectionsRe   = regexp.MustCompile(`(?i)experience|education|skills|summary`)
	metricsRe    = regexp.MustCompile(`(?i)\d+%|\$\d+|increased|reduced|improved|enhanced`)
	spaceRunsRe  = regexp.MustCompile(` {2,}`)
	bulletsRe    = regexp.MustCompile(`[•\-\*]`)
	capitalsRe   = regexp.MustCompile(`[A-Z][a-z]+`)
	nonASCIIRe   = regexp.MustCompile("[^\x00-\x7f]")
	dateFormatRe = regexp.MustCompile(`(?i)\d{4}|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`)
)

// keywordMatchScore is the importance-weighted share of the job posting's
// keywords found in the resume, as an integer percentage. A posting with no
// keywords is trivially fully matched.
func keywordMatchScore(matched, jobKeywords []types.Keyword) int {
	if len(jobKeywords) == 0 {
		return 100
	}

	matchedSet := keywordSet(matched)
	total := 0.0
	matchedWeight := 0.0
	for _, kw := range jobKeywords {
		importance := kw.Importance
		if importance == 0 {
			importance = 1
		}
		total += importance
		if matchedSet[strings.ToLower(kw.Text)] {
			matchedWeight += importance
		}
	}
	if total == 0 {
		return 100
	}
	return int(math.Round(matchedWeight / total * 100))
}

// technicalSkillsScore is the technical match rate scaled to 80%, plus up to
// 20 bonus points for matching the posting's critical technical keywords.
func technicalSkillsScore(matched, jobKeywords []types.Keyword) int {
	technicalTotal := filterCategory(jobKeywords, types.CategoryTechnical)
	if len(technicalTotal) == 0 {
		return 100
	}
	technicalMatched := filterCategory(matched, types.CategoryTechnical)

	matchRate := float64(len(technicalMatched)) / float64(len(technicalTotal)) * 100

	critical := 0
	criticalMatched := 0
	matchedSet := keywordSet(technicalMatched)
	for _, kw := range technicalTotal {
		if kw.Importance <= criticalImportance {
			continue
		}
		critical++
		if matchedSet[strings.ToLower(kw.Text)] {
			criticalMatched++
		}
	}
	bonus := 0.0
	if critical > 0 {
		bonus = float64(criticalMatched) / float64(critical) * 20
	}

	return capScore(int(math.Round(matchRate*0.8 + bonus)))
}

// experienceScore starts from a neutral 50 and rewards meeting the posting's
// years requirement, action-verb usage, and quantified results.
func experienceScore(resumeText, jobText string) int {
	score := 50

	jobYears := features.YearsOfExperience(jobText)
	resumeYears := features.YearsOfExperience(resumeText)
	if jobYears != nil && resumeYears != nil {
		switch {
		case *resumeYears >= *jobYears:
			score += 30
		case float64(*resumeYears) >= float64(*jobYears)*0.7:
			score += 20
		default:
			score += 10
		}
	}

	verbs := len(features.ActionVerbs(resumeText))
	switch {
	case verbs >= 10:
		score += 15
	case verbs >= 5:
		score += 10
	case verbs >= 3:
		score += 5
	}

	if metricsRe.MatchString(resumeText) {
		score += 5
	}

	return capScore(score)
}

// formattingScore rewards recognizable structure: named sections, contact
// info, a sensible length, and consistent bullet formatting.
func formattingScore(resumeText string) int {
	score := 0

	if sectionsRe.MatchString(resumeText) {
		score += 25
	}
	if emailRe.MatchString(resumeText) || phoneRe.MatchString(resumeText) {
		score += 20
	}

	words := features.WordCount(resumeText)
	switch {
	case words >= 300 && words <= 800:
		score += 20
	case words >= 200 && words <= 1000:
		score += 15
	case words >= 100:
		score += 10
	}

	if !spaceRunsRe.MatchString(resumeText) {
		score += 15
	}
	if bulletsRe.MatchString(resumeText) {
		score += 10
	}
	if capitalsRe.MatchString(resumeText) {
		score += 10
	}

	return capScore(score)
}

// atsCompatibilityScore estimates how cleanly an applicant tracking system
// would parse the resume.
func atsCompatibilityScore(resumeText string, matched []types.Keyword) int {
	score := 0

	if sectionsRe.MatchString(resumeText) {
		score += 25
	}

	words := features.WordCount(resumeText)
	if words > 0 {
		density := float64(len(matched)) / (float64(words) / 100)
		switch {
		case density >= 2 && density <= 5:
			score += 25
		case density >= 1 && density <= 7:
			score += 20
		case density > 0:
			score += 10
		}
	}

	if !nonASCIIRe.MatchString(resumeText) {
		score += 15
	}
	if !strings.Contains(resumeText, "|") {
		score += 10
	}

	head := resumeText
	if len(head) > 200 {
		head = head[:200]
	}
	if emailRe.MatchString(head) {
		score += 15
	}

	if dateFormatRe.MatchString(resumeText) {
		score += 10
	}

	return capScore(score)
}

func filterCategory(keywords []types.Keyword, category types.Category) []types.Keyword {
	var out []types.Keyword
	for _, kw := range keywords {
		if kw.Category == category {
			out = append(out, kw)
		}
	}
	return out
}

func keywordSet(keywords []types.Keyword) map[string]bool {
	set := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		set[strings.ToLower(kw.Text)] = true
	}
	return set
}

func capScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}
