package dictionary

import "strings"

// foldTerm lowercases and trims a term for case-insensitive comparison.
func foldTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// CleanCustom trims user-supplied custom keywords and drops empties and
// case-insensitive duplicates, preserving first-seen order and casing.
func CleanCustom(custom []string) []string {
	if len(custom) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(custom))
	out := make([]string, 0, len(custom))
	for _, term := range custom {
		trimmed := strings.TrimSpace(term)
		if trimmed == "" {
			continue
		}
		key := foldTerm(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}
