package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFood(t *testing.T) {
	foods := loadTestCatalogs(t).Foods

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"display name", "tell me about bubble tea", "bubble_tea"},
		{"keyword", "is boba bad for me", "bubble_tea"},
		{"key with underscore", "what about chicken_rice", "chicken_rice"},
		{"longest term wins", "hainanese chicken rice please", "chicken_rice"},
		{"fuzzy display name", "bubbel tea", "bubble_tea"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := MatchFood(foods, tc.message, 0.6)
			require.True(t, m.Found)
			assert.Equal(t, tc.want, m.Food.Key)
		})
	}
}

func TestMatchFood_Miss(t *testing.T) {
	m := MatchFood(loadTestCatalogs(t).Foods, "quantum physics homework", 0.6)
	assert.False(t, m.Found)
	assert.Less(t, m.Score, 0.6)

	assert.False(t, MatchFood(nil, "bubble tea", 0.6).Found)
}

func TestMatchMyth_Paths(t *testing.T) {
	myths := loadTestCatalogs(t).Myths

	m := MatchMyth(myths, "is it true that carbs make you fat?", DefaultMatchConfig())
	require.True(t, m.Found)
	assert.Equal(t, "carbs_fat", m.Myth.ID)
	assert.Equal(t, "claim", m.Path)
	assert.Equal(t, "carbs make you fat", m.Claim)
	assert.InDelta(t, 1.0, m.Score, 1e-9)

	m = MatchMyth(myths, "weights make women bulky", DefaultMatchConfig())
	require.True(t, m.Found)
	assert.Equal(t, "weights_bulky", m.Myth.ID)
	assert.Equal(t, "message", m.Path)
}

func TestMatchMyth_Containment(t *testing.T) {
	myths := loadTestCatalogs(t).Myths
	cfg := DefaultMatchConfig()
	cfg.MythThreshold = 0.95
	cfg.ContainmentFloor = 0.1

	m := MatchMyth(myths, "i think detox tea works", cfg)
	require.True(t, m.Found)
	assert.Equal(t, "detox_tea", m.Myth.ID)
	assert.Equal(t, "containment", m.Path)

	cfg.ContainmentOverride = false
	assert.False(t, MatchMyth(myths, "i think detox tea works", cfg).Found)
}

func TestMatchMyth_Miss(t *testing.T) {
	m := MatchMyth(loadTestCatalogs(t).Myths, "is it true that eggs raise cholesterol", DefaultMatchConfig())
	assert.False(t, m.Found)
	assert.Equal(t, "eggs raise cholesterol", m.Claim)

	assert.False(t, MatchMyth(nil, "carbs make you fat", DefaultMatchConfig()).Found)
}
