package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
)

func TestAssembler_SupportiveFallbacks(t *testing.T) {
	a := NewAssembler(catalog.MessageBank{
		KeyHealthyChoice: {"first", "second"},
		"neutral":        {"neutral line"},
		KeyDangerousMyth: {},
	}, FixedRand(1))

	assert.Equal(t, "second", a.Supportive(KeyHealthyChoice))
	assert.Equal(t, catalog.DefaultSupportiveMessage, a.Supportive(KeyDangerousMyth), "empty bank skips other keys")
	assert.Equal(t, catalog.DefaultSupportiveMessage, a.Supportive(KeyEncouragement), "missing bank skips other keys")

	empty := NewAssembler(nil, nil)
	assert.Equal(t, catalog.DefaultSupportiveMessage, empty.Supportive(KeyEncouragement))
	assert.Equal(t, catalog.DefaultEmotionMessage, empty.supportiveOr(KeyGuiltOrRelapse, catalog.DefaultEmotionMessage))
}

func TestSupportiveKeys(t *testing.T) {
	assert.Equal(t, KeyHealthyChoice, FoodSupportiveKey(catalog.VerdictGoodChoice))
	assert.Equal(t, KeyEncouragement, FoodSupportiveKey(catalog.VerdictTreat))
	assert.Equal(t, KeyDangerousMyth, MythSupportiveKey(catalog.MythEntry{HarmLevel: 4}))
	assert.Equal(t, KeyEncouragement, MythSupportiveKey(catalog.MythEntry{HarmLevel: 3}))
}

func TestMythUI(t *testing.T) {
	tests := []struct {
		verdict catalog.MythVerdict
		harm    int
		mood    string
		color   string
		meter   float64
	}{
		{catalog.VerdictMyth, 5, "serious", "#FF4B6E", 0.2},
		{catalog.VerdictMyth, 4, "serious", "#FF4B6E", 0.2},
		{catalog.VerdictMyth, 1, "warning", "#FF9800", 0.5},
		{catalog.VerdictPartiallyTrue, 4, "explaining", "#FFC857", 0.6},
		{catalog.VerdictTrue, 0, "happy", "#4CAF50", 0.8},
	}

	for _, tc := range tests {
		effects := MythUI(tc.verdict, tc.harm)
		assert.Equal(t, tc.mood, effects.AvatarMood)
		assert.Equal(t, tc.color, effects.HologramColor)
		if assert.NotNil(t, effects.MeterValue) {
			assert.Equal(t, tc.meter, *effects.MeterValue)
		}
	}
}

func TestFoodText_LimitsSwaps(t *testing.T) {
	text := FoodText(catalog.FoodEntry{
		DisplayName:        "Test Food",
		CaloriesPerServing: 120.5,
		HealthierSwaps:     []string{"a", "b", "c", "d"},
		Verdict:            catalog.VerdictGoodChoice,
	})

	assert.Contains(t, text, "Calories: 120.5 kcal")
	assert.Contains(t, text, "• c\n")
	assert.NotContains(t, text, "• d\n")
	assert.Contains(t, text, "solid choice")
}
