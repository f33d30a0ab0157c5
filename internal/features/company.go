package features

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	companyLineRe  = regexp.MustCompile(`(?i)(?:company|employer):\s*([^\n]+)`)
	locationLineRe = regexp.MustCompile(`(?i)(?:location|based in):\s*([^\n]+)`)
)

var remoteIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bremote\b`),
	regexp.MustCompile(`(?i)\bwork from home\b`),
	regexp.MustCompile(`(?i)\bwfh\b`),
	regexp.MustCompile(`(?i)\bdistributed\b`),
}

var jobTypePatterns = []struct {
	pattern *regexp.Regexp
	label   string
}{
	{regexp.MustCompile(`(?i)\bfull[- ]?time\b`), "Full-time"},
	{regexp.MustCompile(`(?i)\bpart[- ]?time\b`), "Part-time"},
	{regexp.MustCompile(`(?i)\b(?:contract|contractor)\b`), "Contract"},
	{regexp.MustCompile(`(?i)\b(?:internship|intern)\b`), "Internship"},
	{regexp.MustCompile(`(?i)\b(?:temporary|temp)\b`), "Temporary"},
}

// ExtractCompanyInfo parses lightweight facts from a job posting: labeled
// company and location lines, remote-work indicators, and the employment
// type. Missing facts stay zero-valued.
func ExtractCompanyInfo(jobText string) types.CompanyInfo {
	var info types.CompanyInfo

	if m := companyLineRe.FindStringSubmatch(jobText); m != nil {
		info.Company = strings.TrimSpace(m[1])
	}
	if m := locationLineRe.FindStringSubmatch(jobText); m != nil {
		info.Location = strings.TrimSpace(m[1])
	}

	for _, re := range remoteIndicators {
		if re.MatchString(jobText) {
			info.Remote = true
			break
		}
	}

	for _, jt := range jobTypePatterns {
		if jt.pattern.MatchString(jobText) {
			info.JobType = jt.label
			break
		}
	}

	return info
}
