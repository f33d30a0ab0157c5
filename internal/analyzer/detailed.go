package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/features"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailRe = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phoneRe = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
	// resumeSectionWords are the standard section names an ATS looks for.
	resumeSectionWords = regexp.MustCompile(`(?i)\b(experience|education|skills|projects)\b`)
)

// buildDetailed computes the sub-score breakdown for an analysis.
func buildDetailed(resumeText, jobText string, matched, jobKeywords []types.Keyword) *types.DetailedAnalysis {
	technical := categoryMatchPercent(matched, jobKeywords, types.CategoryTechnical)
	soft := categoryMatchPercent(matched, jobKeywords, types.CategorySoft)

	detailed := &types.DetailedAnalysis{
		TechnicalMatch:  technical,
		SoftSkillsMatch: soft,
		ExperienceMatch: experienceMatches(resumeText, jobText),
		EducationMatch:  educationMatches(resumeText, jobText),
		ATSScore:        atsScore(resumeText, matched, jobKeywords),
		OverallFit:      types.FitLevelFor(float64(technical+soft) / 2),
	}

	detailed.Strengths, detailed.Weaknesses = assessAreas(detailed)
	return detailed
}

// categoryMatchPercent is the percentage of the job's keywords in one
// category that the resume matched. A job posting with no keywords in the
// category trivially satisfies it at 100%.
func categoryMatchPercent(matched, jobKeywords []types.Keyword, category types.Category) int {
	total := 0
	for _, kw := range jobKeywords {
		if kw.Category == category {
			total++
		}
	}
	if total == 0 {
		return 100
	}

	count := 0
	for _, kw := range matched {
		if kw.Category == category {
			count++
		}
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// experienceMatches is true when the job posting states no minimum years or
// the resume's detected years meet it.
func experienceMatches(resumeText, jobText string) bool {
	jobYears := features.YearsOfExperience(jobText)
	if jobYears == nil {
		return true
	}
	resumeYears := features.YearsOfExperience(resumeText)
	return resumeYears != nil && *resumeYears >= *jobYears
}

// educationMatches is true when the job posting states no education
// requirement or the first two words of any required-degree phrase appear in
// the resume.
func educationMatches(resumeText, jobText string) bool {
	requirements := features.EducationRequirements(jobText)
	if len(requirements) == 0 {
		return true
	}

	for _, req := range requirements {
		words := strings.Fields(req)
		if len(words) == 0 {
			continue
		}
		pattern := `(?i)` + regexp.QuoteMeta(words[0])
		if len(words) > 1 {
			pattern += `\s+` + regexp.QuoteMeta(words[1])
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		if re.MatchString(resumeText) {
			return true
		}
	}
	return false
}

// atsScore is a 0-100 heuristic for how well an applicant tracking system
// would parse the resume: keyword density in the 2-5 per-100-words sweet
// spot, detectable contact info, recognizable section names, and the raw
// match ratio.
func atsScore(resumeText string, matched, jobKeywords []types.Keyword) int {
	score := 0

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

	if emailRe.MatchString(resumeText) && phoneRe.MatchString(resumeText) {
		score += 15
	}

	if resumeSectionWords.MatchString(resumeText) {
		score += 20
	}

	if len(jobKeywords) > 0 {
		ratio := float64(len(matched)) / float64(len(jobKeywords))
		score += int(math.Round(ratio * 40))
	}

	if score > 100 {
		score = 100
	}
	return score
}

// assessAreas names the strength and weakness areas driving the fit level.
func assessAreas(d *types.DetailedAnalysis) (strengths, weaknesses []string) {
	areas := []struct {
		name string
		good bool
	}{
		{"Technical skills", d.TechnicalMatch >= 70},
		{"Soft skills", d.SoftSkillsMatch >= 70},
		{"Experience level", d.ExperienceMatch},
		{"Education", d.EducationMatch},
		{"ATS-friendly formatting", d.ATSScore >= 70},
	}
	for _, area := range areas {
		if area.good {
			strengths = append(strengths, area.name)
		} else {
			weaknesses = append(weaknesses, area.name)
		}
	}
	return strengths, weaknesses
}
