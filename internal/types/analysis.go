package types

// FitLevel is the categorical banding of how well a resume fits a job posting.
type FitLevel string

const (
	// FitExcellent means the category-match average is 80 or above.
	FitExcellent FitLevel = "excellent"
	// FitGood means the category-match average is 60-79.
	FitGood FitLevel = "good"
	// FitFair means the category-match average is 40-59.
	FitFair FitLevel = "fair"
	// FitPoor means the category-match average is below 40.
	FitPoor FitLevel = "poor"
)

// FitLevelFor bands a 0-100 category-match average into a FitLevel.
func FitLevelFor(avg float64) FitLevel {
	switch {
	case avg >= 80:
		return FitExcellent
	case avg >= 60:
		return FitGood
	case avg >= 40:
		return FitFair
	default:
		return FitPoor
	}
}

// DetailedAnalysis is the sub-score breakdown attached to a ResumeAnalysis.
type DetailedAnalysis struct {
	// TechnicalMatch is the percentage of the job's technical keywords
	// present in the resume. 100 when the job posting has none.
	TechnicalMatch int `json:"technical_match"`
	// SoftSkillsMatch is the percentage of the job's soft-skill keywords
	// present in the resume. 100 when the job posting has none.
	SoftSkillsMatch int `json:"soft_skills_match"`
	// ExperienceMatch is true when the job states no minimum years or the
	// resume's detected years meet it.
	ExperienceMatch bool `json:"experience_match"`
	// EducationMatch is true when the job states no education requirement
	// or a required-degree phrase appears in the resume.
	EducationMatch bool `json:"education_match"`
	// ATSScore is a 0-100 heuristic for applicant-tracking-system
	// parseability.
	ATSScore int `json:"ats_score"`
	// OverallFit bands the average of TechnicalMatch and SoftSkillsMatch.
	OverallFit FitLevel `json:"overall_fit"`
	// Strengths and Weaknesses name the areas driving the fit level.
	Strengths  []string `json:"strengths,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
}

// ResumeAnalysis is the result of comparing one resume to one job posting.
// It is a pure computed value with no identity or persistence; callers
// recompute it whenever either input document or the custom keyword list
// changes.
type ResumeAnalysis struct {
	// Score is the importance-weighted overall match percentage, 0-100.
	Score int `json:"score"`
	// MatchedKeywords and MissingKeywords partition the job posting's
	// keyword set: every job keyword appears in exactly one of the two,
	// keyed by case-insensitive text equality against the resume's
	// keywords. Matched entries carry the resume's occurrence counts.
	MatchedKeywords []Keyword `json:"matched_keywords"`
	MissingKeywords []Keyword `json:"missing_keywords"`
	// Suggestions is an ordered list of display-ready advice strings.
	Suggestions []string `json:"suggestions"`
	// Detailed carries the sub-score breakdown. Nil only for the
	// zero-valued result returned on empty input.
	Detailed *DetailedAnalysis `json:"detailed_analysis,omitempty"`
}
