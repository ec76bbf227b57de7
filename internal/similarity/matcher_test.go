package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type myth struct {
	label string
}

func mythLabel(m myth) string { return m.label }

var myths = []myth{
	{label: "eating late causes weight gain"},
	{label: "carbs make you fat"},
	{label: "detox teas help you lose weight"},
}

func TestBestMatch_Hit(t *testing.T) {
	res := BestMatch("carbs make you fat", myths, mythLabel, 0.5)
	require.True(t, res.Found)
	assert.Equal(t, "carbs make you fat", res.Candidate.label)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, 1.0, res.Score)
}

func TestBestMatch_MissKeepsBestScore(t *testing.T) {
	res := BestMatch("xyzzy plugh", myths, mythLabel, 0.99)
	assert.False(t, res.Found)
	assert.Equal(t, -1, res.Index)
	assert.Equal(t, myth{}, res.Candidate)
	assert.GreaterOrEqual(t, res.Score, 0.0)
	assert.Less(t, res.Score, 0.99)
}

func TestBestMatch_NeverBelowThreshold(t *testing.T) {
	queries := []string{"carbs fat", "late eating", "tea detox", "random words here", "fat"}
	for _, q := range queries {
		for _, th := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			res := BestMatch(q, myths, mythLabel, th)
			if res.Found {
				assert.GreaterOrEqual(t, res.Score, th, "%q @ %v", q, th)
			}
		}
	}
}

func TestBestMatch_ThresholdMonotonic(t *testing.T) {
	queries := []string{"carbs fat", "late eating", "tea detox", "fat"}
	thresholds := []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0}
	for _, q := range queries {
		accepted := true
		for _, th := range thresholds {
			res := BestMatch(q, myths, mythLabel, th)
			if !accepted {
				assert.False(t, res.Found, "%q accepted again at %v", q, th)
			}
			accepted = res.Found
		}
	}
}

func TestBestMatch_FirstWinsTie(t *testing.T) {
	dupes := []myth{{label: "sugar is poison"}, {label: "poison is sugar"}}
	res := BestMatch("sugar poison", dupes, mythLabel, 0.5)
	require.True(t, res.Found)
	assert.Equal(t, 0, res.Index)
}

func TestBestMatch_EmptyInputs(t *testing.T) {
	assert.False(t, BestMatch("", myths, mythLabel, 0).Found)
	assert.False(t, BestMatch("carbs", []myth{}, mythLabel, 0).Found)
}

func TestScoreAll(t *testing.T) {
	scored := ScoreAll("carbs make you fat", myths, mythLabel)
	require.Len(t, scored, 3)
	assert.Equal(t, 1.0, scored[1].Score)
	assert.Less(t, scored[0].Score, 1.0)
}
