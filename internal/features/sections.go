package features

import (
	"regexp"
	"strings"
)

// sectionHeaders are the standard resume section names, checked in order.
var sectionHeaders = []string{
	"SUMMARY", "OBJECTIVE", "EXPERIENCE", "WORK EXPERIENCE",
	"EDUCATION", "SKILLS", "TECHNICAL SKILLS", "PROJECTS",
	"CERTIFICATIONS", "AWARDS", "LANGUAGES",
}

// headerSection is the implicit section for content before the first header.
const headerSection = "HEADER"

// Sections splits a resume into named sections keyed by their header line.
// Content before the first recognized header lands under "HEADER".
func Sections(text string) map[string]string {
	sections := make(map[string]string)
	current := headerSection
	var content []string

	flush := func() {
		joined := strings.TrimSpace(strings.Join(content, "\n"))
		if joined != "" {
			sections[current] = joined
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.ToUpper(strings.TrimSpace(line))

		matched := ""
		for _, header := range sectionHeaders {
			if trimmed == header || strings.HasPrefix(trimmed, header) {
				matched = header
				break
			}
		}

		if matched != "" {
			flush()
			current = matched
			content = content[:0]
			continue
		}
		content = append(content, line)
	}
	flush()

	return sections
}

var (
	camelBoundary  = regexp.MustCompile(`([a-z])([A-Z])`)
	blankRuns      = regexp.MustCompile(`\n{3,}`)
	spaceRuns      = regexp.MustCompile(`[ \t]+`)
	knownHeadersRe = regexp.MustCompile(`(?i)\b(EXPERIENCE|EDUCATION|SKILLS|SUMMARY|PROJECTS|CERTIFICATIONS)\b`)
)

// FormatResumeText normalizes text extracted from a file: collapses
// whitespace, re-inserts word breaks lost at camelCase joins, and promotes
// known section names onto their own lines.
func FormatResumeText(text string) string {
	formatted := spaceRuns.ReplaceAllString(text, " ")
	formatted = blankRuns.ReplaceAllString(formatted, "\n\n")
	formatted = strings.TrimSpace(formatted)

	formatted = camelBoundary.ReplaceAllString(formatted, "$1 $2")

	formatted = knownHeadersRe.ReplaceAllStringFunc(formatted, func(m string) string {
		return "\n\n" + strings.ToUpper(m) + "\n"
	})

	return formatted
}

// HighlightKeywords wraps every whole-word occurrence of each keyword in
// markdown bold markers, preserving the matched casing.
func HighlightKeywords(text string, keywords []string) string {
	highlighted := text
	for _, keyword := range keywords {
		if strings.TrimSpace(keyword) == "" {
			continue
		}
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		if err != nil {
			continue
		}
		highlighted = pattern.ReplaceAllStringFunc(highlighted, func(m string) string {
			return "**" + m + "**"
		})
	}
	return highlighted
}

// SmartTruncate shortens text to at most maxLength characters, preferring to
// cut at a word boundary when one falls in the last fifth of the budget.
func SmartTruncate(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}

	truncated := text[:maxLength]
	if lastSpace := strings.LastIndexByte(truncated, ' '); lastSpace > int(float64(maxLength)*0.8) {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}
