package extractor

import (
	"regexp"
	"strings"
)

// wholeWordPattern compiles a case-insensitive whole-word pattern for a
// dictionary term. Regex metacharacters in the term are escaped so entries
// like "C++" or "C#" match literally. A word-boundary assertion is only
// anchored on edges that are themselves word characters: `\b` after the
// trailing "+" of "C++" would otherwise require a following word character
// and the term would never match.
func wholeWordPattern(term string) (*regexp.Regexp, error) {
	if term == "" {
		return nil, errEmptyTerm
	}
	escaped := regexp.QuoteMeta(term)

	var sb strings.Builder
	sb.WriteString("(?i)")
	if isWordChar(rune(term[0])) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(escaped)
	if isWordChar(rune(term[len(term)-1])) {
		sb.WriteString(`\b`)
	}

	return regexp.Compile(sb.String())
}

func isWordChar(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// sentenceSplitter breaks a document into sentence-ish units on terminal
// punctuation and newlines.
var sentenceSplitter = regexp.MustCompile(`[.!?\n]+`)

// splitSentences returns the non-empty trimmed sentences of a document.
func splitSentences(text string) []string {
	raw := sentenceSplitter.Split(text, -1)
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// firstThird returns the first third of the document's non-blank lines
// joined with spaces, used as a prominence signal.
func firstThird(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines[:len(lines)/3], " ")
}
