package types

// Rank is the categorical banding of a composite score.
type Rank string

const (
	// RankExcellent means an overall score of 85 or above.
	RankExcellent Rank = "Excellent"
	// RankGood means an overall score of 70-84.
	RankGood Rank = "Good"
	// RankFair means an overall score of 50-69.
	RankFair Rank = "Fair"
	// RankPoor means an overall score below 50.
	RankPoor Rank = "Poor"
)

// RankFor bands a 0-100 overall score into a Rank.
func RankFor(score int) Rank {
	switch {
	case score >= 85:
		return RankExcellent
	case score >= 70:
		return RankGood
	case score >= 50:
		return RankFair
	default:
		return RankPoor
	}
}

// ScoreBreakdown holds the five independent 0-100 sub-scores computed by the
// composite scoring engine.
type ScoreBreakdown struct {
	KeywordMatch     int `json:"keyword_match"`
	TechnicalSkills  int `json:"technical_skills"`
	Experience       int `json:"experience"`
	Formatting       int `json:"formatting"`
	ATSCompatibility int `json:"ats_compatibility"`
}

// ScoringResult is the output of the composite scoring engine. It is a
// parallel analysis to ResumeAnalysis, not a layered one: the two use
// different weight vectors and partially different signals.
type ScoringResult struct {
	// OverallScore is the weighted blend of the breakdown, 0-100.
	OverallScore int `json:"overall_score"`
	// Breakdown holds the individual sub-scores.
	Breakdown ScoreBreakdown `json:"breakdown"`
	// Recommendations names each deficient area with a remedial action.
	Recommendations []string `json:"recommendations"`
	// Rank bands the overall score.
	Rank Rank `json:"rank"`
}

// Priority orders optimization actions.
type Priority string

const (
	// PriorityHigh marks actions expected to move the score the most.
	PriorityHigh Priority = "High"
	// PriorityMedium marks moderately impactful actions.
	PriorityMedium Priority = "Medium"
	// PriorityLow marks polish-level actions.
	PriorityLow Priority = "Low"
)

// order returns the sort key for a priority; lower sorts first.
func (p Priority) order() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Before reports whether p should sort ahead of other in an optimization plan.
func (p Priority) Before(other Priority) bool {
	return p.order() < other.order()
}

// OptimizationAction is one prioritized step in an optimization plan. The
// Impact string is advisory text only and never feeds back into scoring.
type OptimizationAction struct {
	Priority Priority `json:"priority"`
	Action   string   `json:"action"`
	Impact   string   `json:"impact"`
}

// VersionDiff summarizes the differences between two resume drafts.
// ScoreChange is a naive keyword-count delta, an approximation rather than a
// recomputation of the full score.
type VersionDiff struct {
	KeywordsAdded   []string `json:"keywords_added"`
	KeywordsRemoved []string `json:"keywords_removed"`
	// LengthChange is the word-count delta (second draft minus first).
	LengthChange int `json:"length_change"`
	ScoreChange  int `json:"score_change"`
}
