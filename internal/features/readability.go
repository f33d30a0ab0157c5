package features

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	sentenceEnd  = regexp.MustCompile(`[.!?]+`)
	nonLetters   = regexp.MustCompile(`[^a-z]`)
	vowelGroups  = regexp.MustCompile(`[aeiouy]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CalculateReadability computes the Flesch reading-ease score for a document
// and bands it into one of seven ordinal levels. Syllables are approximated
// by counting vowel groups with a trailing-"e" correction.
func CalculateReadability(text string) types.Readability {
	sentences := 0
	for _, s := range sentenceEnd.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	words := splitWords(text)

	avgWordsPerSentence := 0.0
	if sentences > 0 {
		avgWordsPerSentence = float64(len(words)) / float64(sentences)
	}

	totalSyllables := 0
	for _, word := range words {
		totalSyllables += countSyllables(word)
	}
	avgSyllablesPerWord := 0.0
	if len(words) > 0 {
		avgSyllablesPerWord = float64(totalSyllables) / float64(len(words))
	}

	flesch := 206.835 - 1.015*avgWordsPerSentence - 84.6*avgSyllablesPerWord
	score := int(math.Round(flesch))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.Readability{
		Score:               score,
		Level:               readabilityLevel(score),
		AvgWordsPerSentence: math.Round(avgWordsPerSentence*10) / 10,
		AvgSyllablesPerWord: math.Round(avgSyllablesPerWord*10) / 10,
	}
}

// splitWords returns the whitespace-separated tokens of a document.
func splitWords(text string) []string {
	var words []string
	for _, w := range whitespaceRe.Split(text, -1) {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// WordCount returns the number of whitespace-separated tokens.
func WordCount(text string) int {
	return len(splitWords(text))
}

// countSyllables approximates syllables by vowel-group counting. Words of
// three letters or fewer count as one syllable; a trailing "e" is assumed
// silent.
func countSyllables(word string) int {
	word = nonLetters.ReplaceAllString(strings.ToLower(word), "")
	if len(word) <= 3 {
		return 1
	}

	count := len(vowelGroups.FindAllString(word, -1))
	if count == 0 {
		count = 1
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func readabilityLevel(score int) types.ReadabilityLevel {
	switch {
	case score >= 90:
		return types.ReadabilityVeryEasy
	case score >= 80:
		return types.ReadabilityEasy
	case score >= 70:
		return types.ReadabilityFairlyEasy
	case score >= 60:
		return types.ReadabilityStandard
	case score >= 50:
		return types.ReadabilityFairlyDifficult
	case score >= 30:
		return types.ReadabilityDifficult
	default:
		return types.ReadabilityVeryDifficult
	}
}
