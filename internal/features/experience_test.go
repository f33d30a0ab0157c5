package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearsOfExperience_Simple(t *testing.T) {
	years := YearsOfExperience("We need 5+ years of experience with Go.")
	require.NotNil(t, years)
	assert.Equal(t, 5, *years)
}

func TestYearsOfExperience_TakesMaximum(t *testing.T) {
	text := "3 years experience in frontend, 8+ years of experience overall, 2 yrs experience with SQL."
	years := YearsOfExperience(text)
	require.NotNil(t, years)
	assert.Equal(t, 8, *years)
}

func TestYearsOfExperience_ReversedPhrasing(t *testing.T) {
	years := YearsOfExperience("Professional experience of 10 years in operations.")
	require.NotNil(t, years)
	assert.Equal(t, 10, *years)
}

func TestYearsOfExperience_None(t *testing.T) {
	assert.Nil(t, YearsOfExperience("Great opportunity for motivated people."))
	assert.Nil(t, YearsOfExperience(""))
}

func TestYearsOfExperience_RejectsImplausible(t *testing.T) {
	assert.Nil(t, YearsOfExperience("200 years of experience required."))
}

func TestEducationRequirements_FindsAndDeduplicates(t *testing.T) {
	text := "Bachelor's degree in CS required. A Master's degree is preferred. Bachelor's degree in CS required."
	reqs := EducationRequirements(text)

	require.NotEmpty(t, reqs)
	assert.LessOrEqual(t, len(reqs), maxEducationRequirements)
	seen := make(map[string]bool)
	for _, r := range reqs {
		assert.Less(t, len(r), 200)
		assert.False(t, seen[r], "duplicate clause: %s", r)
		seen[r] = true
	}
}

func TestEducationRequirements_None(t *testing.T) {
	assert.Empty(t, EducationRequirements("No formal requirements at all."))
}

func TestSalaryRange_DollarAmounts(t *testing.T) {
	sal := SalaryRange("Compensation: $120,000 - $150,000 plus equity.")
	require.NotNil(t, sal)
	assert.Equal(t, 120000, sal.Min)
	assert.Equal(t, 150000, sal.Max)
	assert.Equal(t, "USD", sal.Currency)
}

func TestSalaryRange_KSuffix(t *testing.T) {
	sal := SalaryRange("Pays 120k - 150k depending on level.")
	require.NotNil(t, sal)
	assert.Equal(t, 120000, sal.Min)
	assert.Equal(t, 150000, sal.Max)
}

func TestSalaryRange_None(t *testing.T) {
	assert.Nil(t, SalaryRange("Competitive compensation."))
}
