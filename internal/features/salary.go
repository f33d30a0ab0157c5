package features

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var salaryPatterns = []*regexp.Regexp{
	// "$120,000 - $150,000" with optional cents
	regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)\s*[-–]\s*\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	// "120k - 150k"
	regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*)k?\s*[-–]\s*(\d{1,3}(?:,\d{3})*)k`),
}

// SalaryRange returns the first detected compensation range, or nil when the
// text contains none. USD is the only recognized currency.
func SalaryRange(text string) *types.SalaryRange {
	for i, pattern := range salaryPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		minVal, err1 := parseSalaryNumber(match[1])
		maxVal, err2 := parseSalaryNumber(match[2])
		if err1 != nil || err2 != nil {
			continue
		}

		// The "k" pattern expresses thousands.
		if i == 1 {
			minVal *= 1000
			maxVal *= 1000
		}

		return &types.SalaryRange{Min: minVal, Max: maxVal, Currency: "USD"}
	}
	return nil
}

// parseSalaryNumber parses a comma-grouped number, dropping any cents.
func parseSalaryNumber(s string) (int, error) {
	s = strings.ReplaceAll(s, ",", "")
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	return strconv.Atoi(s)
}
