package features

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// KeywordDensity returns, per keyword, the percentage of the document's
// words occupied by that keyword's occurrences. Multi-word keywords count
// each of their words.
func KeywordDensity(keywords []types.Keyword, totalWords int) map[string]float64 {
	density := make(map[string]float64, len(keywords))
	for _, kw := range keywords {
		if totalWords <= 0 {
			density[kw.Text] = 0
			continue
		}
		keywordWords := len(strings.Fields(kw.Text))
		occupied := kw.Count * keywordWords
		density[kw.Text] = float64(occupied) / float64(totalWords) * 100
	}
	return density
}
