package features

import "regexp"

// actionVerbs is the fixed professional-action-verb list. Presence of a verb
// is a quality signal for resume bullets; occurrence counts are not tracked.
var actionVerbs = []string{
	"achieved", "administered", "analyzed", "architected", "automated",
	"built", "collaborated", "completed", "coordinated", "created",
	"delivered", "demonstrated", "designed", "developed", "directed",
	"drove", "enhanced", "established", "executed", "expanded",
	"facilitated", "founded", "generated", "implemented", "improved",
	"increased", "initiated", "integrated", "launched", "led",
	"managed", "mentored", "optimized", "organized", "partnered",
	"performed", "planned", "produced", "reduced", "resolved",
	"scaled", "spearheaded", "streamlined", "supervised", "transformed",
}

var actionVerbPatterns = compileVerbPatterns()

func compileVerbPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(actionVerbs))
	for _, verb := range actionVerbs {
		patterns[verb] = regexp.MustCompile(`(?i)\b` + verb + `\b`)
	}
	return patterns
}

// ActionVerbs returns which professional action verbs appear at least once
// in the text, in list order.
func ActionVerbs(text string) []string {
	var found []string
	for _, verb := range actionVerbs {
		if actionVerbPatterns[verb].MatchString(text) {
			found = append(found, verb)
		}
	}
	return found
}
