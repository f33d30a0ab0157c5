package features

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_SplitsOnHeaders(t *testing.T) {
	resume := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"EXPERIENCE",
		"Built things at Acme.",
		"EDUCATION",
		"BS Computer Science",
	}, "\n")

	sections := Sections(resume)

	require.Contains(t, sections, "HEADER")
	assert.Contains(t, sections["HEADER"], "Jane Doe")
	assert.Equal(t, "Built things at Acme.", sections["EXPERIENCE"])
	assert.Equal(t, "BS Computer Science", sections["EDUCATION"])
}

func TestSections_HeaderPrefixMatch(t *testing.T) {
	sections := Sections("SKILLS & TOOLS\nGo, SQL")
	assert.Equal(t, "Go, SQL", sections["SKILLS"])
}

func TestSections_NoHeaders(t *testing.T) {
	sections := Sections("just a paragraph of text")
	assert.Len(t, sections, 1)
	assert.Contains(t, sections, "HEADER")
}

func TestActionVerbs_FindsWholeWords(t *testing.T) {
	text := "Led a team of five. Developed and launched two products. The misled intern helped."
	verbs := ActionVerbs(text)

	assert.Contains(t, verbs, "led")
	assert.Contains(t, verbs, "developed")
	assert.Contains(t, verbs, "launched")
	assert.NotContains(t, verbs, "achieved")
}

func TestActionVerbs_NoDuplicates(t *testing.T) {
	verbs := ActionVerbs("Managed this, managed that, MANAGED everything.")
	count := 0
	for _, v := range verbs {
		if v == "managed" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestHighlightKeywords(t *testing.T) {
	out := HighlightKeywords("Senior Go and go-to-market roles", []string{"Go"})
	assert.Contains(t, out, "**Go**")
	// "go-to-market" contains "go" as a whole word between hyphens.
	assert.Contains(t, out, "**go**-to-market")
}

func TestHighlightKeywords_EscapesSpecialCharacters(t *testing.T) {
	out := HighlightKeywords("C++ and C# developer", []string{"C++", "C#"})
	assert.Contains(t, out, "**C++**")
	assert.Contains(t, out, "**C#**")
}

func TestSmartTruncate(t *testing.T) {
	assert.Equal(t, "short", SmartTruncate("short", 10))

	long := "the quick brown fox jumps over the lazy dog"
	out := SmartTruncate(long, 20)
	assert.LessOrEqual(t, len(out), 23)
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestExtractCompanyInfo(t *testing.T) {
	job := "Company: Acme Corp\nLocation: Portland, OR\nThis is a full-time remote position."
	info := ExtractCompanyInfo(job)

	assert.Equal(t, "Acme Corp", info.Company)
	assert.Equal(t, "Portland, OR", info.Location)
	assert.Equal(t, "Full-time", info.JobType)
	assert.True(t, info.Remote)
}

func TestExtractCompanyInfo_Empty(t *testing.T) {
	info := ExtractCompanyInfo("A job doing things.")
	assert.Empty(t, info.Company)
	assert.False(t, info.Remote)
}

func TestKeywordDensity(t *testing.T) {
	keywords := []types.Keyword{
		{Text: "Go", Count: 2},
		{Text: "machine learning", Count: 1},
	}
	density := KeywordDensity(keywords, 100)

	assert.InDelta(t, 2.0, density["Go"], 0.001)
	assert.InDelta(t, 2.0, density["machine learning"], 0.001)
}

func TestKeywordDensity_ZeroWords(t *testing.T) {
	density := KeywordDensity([]types.Keyword{{Text: "Go", Count: 3}}, 0)
	assert.Equal(t, 0.0, density["Go"])
}

func TestFormatResumeText_PromotesHeaders(t *testing.T) {
	out := FormatResumeText("Jane Doe experience at Acme")
	assert.Contains(t, out, "EXPERIENCE")
}
