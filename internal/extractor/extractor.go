// Package extractor scans documents against a dictionary snapshot and emits
// weighted keywords. All functions are pure transforms of their inputs: the
// snapshot is treated as an immutable value, so concurrent extractions with
// different snapshots never interfere.
package extractor

import (
	"errors"
	"log"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// maxContexts caps the sentence excerpts kept per keyword.
	maxContexts = 3
	// maxContextLength truncates each excerpt.
	maxContextLength = 100
)

var errEmptyTerm = errors.New("empty dictionary term")

// Extract scans text against every term in the snapshot and returns the
// detected keywords sorted by importance (descending), ties broken by count
// (descending). Empty input returns an empty list, never an error. A term
// that fails to compile is logged and skipped; the remaining terms are still
// extracted.
func Extract(text string, snap dictionary.Snapshot) []types.Keyword {
	if strings.TrimSpace(text) == "" {
		return []types.Keyword{}
	}

	sentences := splitSentences(text)
	lead := firstThird(text)

	// Keyed by category plus case-folded text: duplicate entries within a
	// list merge counts and contexts, while a custom term that shadows a
	// built-in one still emits its own record.
	merged := make(map[string]*types.Keyword)
	var order []string

	for _, list := range snap.Lists() {
		for _, term := range list.Terms {
			term = strings.TrimSpace(term)
			kw, err := matchTerm(term, list.Category, text, sentences, lead)
			if err != nil {
				log.Printf("extractor: skipping term %q: %v", term, err)
				continue
			}
			if kw == nil {
				continue
			}

			key := string(list.Category) + "\x00" + strings.ToLower(kw.Text)
			if existing, ok := merged[key]; ok {
				existing.Count += kw.Count
				existing.Context = mergeContexts(existing.Context, kw.Context)
				continue
			}
			merged[key] = kw
			order = append(order, key)
		}
	}

	keywords := make([]types.Keyword, 0, len(order))
	for _, key := range order {
		keywords = append(keywords, *merged[key])
	}

	// Stable sort keeps insertion order for fully-equal entries; callers
	// must not rely on the order among those.
	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Importance != keywords[j].Importance {
			return keywords[i].Importance > keywords[j].Importance
		}
		return keywords[i].Count > keywords[j].Count
	})

	return keywords
}

// matchTerm scans one term and returns its Keyword, or nil when the term
// does not occur in the text.
func matchTerm(term string, category types.Category, text string, sentences []string, lead string) (*types.Keyword, error) {
	if term == "" {
		return nil, errEmptyTerm
	}

	pattern, err := wholeWordPattern(term)
	if err != nil {
		return nil, err
	}

	count := len(pattern.FindAllStringIndex(text, -1))
	if count == 0 {
		return nil, nil
	}

	return &types.Keyword{
		Text:       term,
		Category:   category,
		Count:      count,
		Importance: computeImportance(term, category, text, pattern, lead),
		Context:    contextsFor(pattern, sentences),
	}, nil
}

// contextsFor collects up to maxContexts deduplicated sentence excerpts
// containing the term.
func contextsFor(pattern *regexp.Regexp, sentences []string) []string {
	var contexts []string
	seen := make(map[string]bool)
	for _, sentence := range sentences {
		if len(contexts) >= maxContexts {
			break
		}
		if !pattern.MatchString(sentence) {
			continue
		}
		excerpt := sentence
		if len(excerpt) > maxContextLength {
			excerpt = excerpt[:maxContextLength]
		}
		if seen[excerpt] {
			continue
		}
		seen[excerpt] = true
		contexts = append(contexts, excerpt)
	}
	return contexts
}

// mergeContexts unions two excerpt lists, deduplicated and capped.
func mergeContexts(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	out := make([]string, 0, maxContexts)
	for _, c := range a {
		if !seen[c] && len(out) < maxContexts {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range b {
		if !seen[c] && len(out) < maxContexts {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
