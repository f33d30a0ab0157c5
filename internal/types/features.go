package types

// SalaryRange is a detected compensation range. Only USD is recognized.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// ReadabilityLevel is one of the seven Flesch reading-ease bands.
type ReadabilityLevel string

const (
	ReadabilityVeryEasy        ReadabilityLevel = "Very Easy"
	ReadabilityEasy            ReadabilityLevel = "Easy"
	ReadabilityFairlyEasy      ReadabilityLevel = "Fairly Easy"
	ReadabilityStandard        ReadabilityLevel = "Standard"
	ReadabilityFairlyDifficult ReadabilityLevel = "Fairly Difficult"
	ReadabilityDifficult       ReadabilityLevel = "Difficult"
	ReadabilityVeryDifficult   ReadabilityLevel = "Very Difficult"
)

// Readability holds Flesch reading-ease metrics for a document.
type Readability struct {
	// Score is the Flesch reading-ease score clamped to [0,100].
	Score int `json:"score"`
	// Level bands the score into one of seven ordinal levels.
	Level ReadabilityLevel `json:"level"`
	// AvgWordsPerSentence and AvgSyllablesPerWord are rounded to one
	// decimal place.
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
}

// CompanyInfo holds lightweight facts parsed from a job posting header.
type CompanyInfo struct {
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	JobType  string `json:"job_type,omitempty"`
	Remote   bool   `json:"remote"`
}
