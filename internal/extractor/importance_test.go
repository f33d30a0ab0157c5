package extractor

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/dictionary"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importanceOf(t *testing.T, text, term string, snap dictionary.Snapshot) float64 {
	t.Helper()
	kw := findKeyword(Extract(text, snap), term)
	require.NotNil(t, kw, "expected %s in %q", term, text)
	return kw.Importance
}

func TestImportance_RequiredBonus(t *testing.T) {
	snap := dictionary.BuiltIn()
	plain := importanceOf(t, "We use React here.", "React", snap)
	required := importanceOf(t, "Required skills include React.", "React", snap)

	assert.Greater(t, required, plain)
	assert.InDelta(t, 3, required-plain, 0.001)
}

func TestImportance_MustHaveBonus(t *testing.T) {
	snap := dictionary.BuiltIn()
	plain := importanceOf(t, "We use AWS here.", "AWS", snap)
	mustHave := importanceOf(t, "Must have solid AWS background.", "AWS", snap)

	assert.InDelta(t, 3, mustHave-plain, 0.001)
}

func TestImportance_ExperienceBonus(t *testing.T) {
	snap := dictionary.BuiltIn()
	plain := importanceOf(t, "Docker is part of the stack.", "Docker", snap)
	exp := importanceOf(t, "Docker production experience preferred.", "Docker", snap)

	assert.InDelta(t, 2, exp-plain, 0.001)
}

func TestImportance_CategoryBonuses(t *testing.T) {
	snap := dictionary.BuiltIn().WithCustom([]string{"Shortcut"})

	// Same sentence shape so only the category bonus differs from a tool.
	tool := importanceOf(t, "We use Jira daily.", "Jira", snap)
	technical := importanceOf(t, "We use Python daily.", "Python", snap)
	custom := importanceOf(t, "We use Shortcut daily.", "Shortcut", snap)

	assert.InDelta(t, 1, technical-tool, 0.001)
	assert.InDelta(t, 0.5, custom-tool, 0.001)
}

func TestImportance_CertificationBonus(t *testing.T) {
	snap := dictionary.BuiltIn()
	tool := importanceOf(t, "We use Jira.", "Jira", snap)
	cert := importanceOf(t, "A PMP is a plus.", "PMP", snap)

	assert.InDelta(t, 1.5, cert-tool, 0.001)
}

func TestImportance_FirstThirdBonus(t *testing.T) {
	snap := dictionary.BuiltIn()

	early := "Python team lead wanted.\nline two\nline three\nline four\nline five\nline six"
	late := "line one\nline two\nline three\nline four\nline five\nPython team lead wanted."

	assert.InDelta(t, 1,
		importanceOf(t, early, "Python", snap)-importanceOf(t, late, "Python", snap),
		0.001)
}

func TestImportance_TriggerIsUnanchored(t *testing.T) {
	// The trigger word and the term only need to co-occur on a line, in
	// order; arbitrary words may sit between them.
	snap := dictionary.BuiltIn()
	spread := importanceOf(t,
		"Required qualifications for this role definitely include React.", "React", snap)
	plain := importanceOf(t, "This role uses React.", "React", snap)

	assert.InDelta(t, 3, spread-plain, 0.001)
}

func TestImportance_Floor(t *testing.T) {
	keywords := Extract("Jira user.", dictionary.BuiltIn())
	kw := findKeyword(keywords, "Jira")
	require.NotNil(t, kw)
	assert.GreaterOrEqual(t, kw.Importance, importanceFloor)
}

func TestCategoryBonus_Exhaustive(t *testing.T) {
	for _, c := range types.Categories() {
		// Must not panic and must be non-negative for every category.
		assert.GreaterOrEqual(t, categoryBonus(c), 0.0)
	}
}
