package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory_Known(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(string(c))
		assert.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("hobby")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hobby")
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategoryTechnical.Valid())
	assert.True(t, CategoryCustom.Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("misc").Valid())
}

func TestCategorizeKeywords_GroupsAndPreservesOrder(t *testing.T) {
	keywords := []Keyword{
		{Text: "Go", Category: CategoryTechnical},
		{Text: "Leadership", Category: CategorySoft},
		{Text: "Python", Category: CategoryTechnical},
		{Text: "Jira", Category: CategoryTool},
	}

	grouped := CategorizeKeywords(keywords)

	assert.Len(t, grouped, 3)
	assert.Equal(t, "Go", grouped[CategoryTechnical][0].Text)
	assert.Equal(t, "Python", grouped[CategoryTechnical][1].Text)
	assert.Len(t, grouped[CategorySoft], 1)
	assert.Len(t, grouped[CategoryTool], 1)
}

func TestCategorizeKeywords_Empty(t *testing.T) {
	grouped := CategorizeKeywords(nil)
	assert.Empty(t, grouped)
}
