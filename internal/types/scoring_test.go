package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankFor_Bands(t *testing.T) {
	assert.Equal(t, RankExcellent, RankFor(100))
	assert.Equal(t, RankExcellent, RankFor(85))
	assert.Equal(t, RankGood, RankFor(84))
	assert.Equal(t, RankGood, RankFor(70))
	assert.Equal(t, RankFair, RankFor(69))
	assert.Equal(t, RankFair, RankFor(50))
	assert.Equal(t, RankPoor, RankFor(49))
	assert.Equal(t, RankPoor, RankFor(0))
}

func TestFitLevelFor_Bands(t *testing.T) {
	assert.Equal(t, FitExcellent, FitLevelFor(80))
	assert.Equal(t, FitGood, FitLevelFor(79.9))
	assert.Equal(t, FitGood, FitLevelFor(60))
	assert.Equal(t, FitFair, FitLevelFor(59))
	assert.Equal(t, FitFair, FitLevelFor(40))
	assert.Equal(t, FitPoor, FitLevelFor(39.9))
}

func TestPriority_Before(t *testing.T) {
	assert.True(t, PriorityHigh.Before(PriorityMedium))
	assert.True(t, PriorityMedium.Before(PriorityLow))
	assert.False(t, PriorityLow.Before(PriorityHigh))
	assert.False(t, PriorityHigh.Before(PriorityHigh))
}
