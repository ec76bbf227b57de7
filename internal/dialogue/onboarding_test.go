package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
)

var (
	goalOptions = []string{"Weight Loss", "Muscle Gain", "General Health"}
	dietOptions = []string{"Vegetarian", "Vegan", "No pork / Halal", "No preference"}
)

func TestParseGoal(t *testing.T) {
	tests := []struct {
		answer  string
		options []string
		want    Goal
	}{
		{"1", goalOptions, GoalWeightLoss},
		{"2.", goalOptions, GoalMuscleGain},
		{" 3 ", goalOptions, GoalGeneralHealth},
		{"2 please", goalOptions, GoalMuscleGain},
		{"I want to lose some fat", goalOptions, GoalWeightLoss},
		{"Muscle", goalOptions, GoalMuscleGain},
		{"banana", goalOptions, GoalGeneralHealth},
		{"i have 2 kids and want to lose weight", goalOptions, GoalWeightLoss},
		{"9", goalOptions, GoalGeneralHealth},
		{"2", nil, GoalMuscleGain},
		{"3", nil, GoalGeneralHealth},
		{"7", nil, GoalGeneralHealth},
		{"", nil, GoalGeneralHealth},
		{"weight_loss", nil, GoalWeightLoss},
		{"Weight_Loss", goalOptions, GoalWeightLoss},
		{"muscle_gain", nil, GoalMuscleGain},
		{"weight-loss", nil, GoalWeightLoss},
		{"general_health", nil, GoalGeneralHealth},
	}

	for _, tc := range tests {
		t.Run(tc.answer, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseGoal(tc.answer, tc.options))
		})
	}
}

func TestParseDiet(t *testing.T) {
	tests := []struct {
		answer string
		want   DietPreference
	}{
		{"1", DietVegetarian},
		{"2", DietVegan},
		{"3", DietNoPork},
		{"4", DietNone},
		{"I'm vegan", DietVegan},
		{"veg", DietVegetarian},
		{"Vegetarian mostly", DietVegetarian},
		{"halal please", DietNoPork},
		{"no pork", DietNoPork},
		{"nothing special", DietNone},
		{"no_pork", DietNoPork},
		{"no-pork", DietNoPork},
	}

	for _, tc := range tests {
		t.Run(tc.answer, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDiet(tc.answer, dietOptions))
		})
	}
}

func TestOnboarding_LockIn(t *testing.T) {
	c := NewConversation(newTestEngine(t))

	env := c.ProcessMessage("start")
	assert.Equal(t, TypeProfileUpdate, env.Type)
	assert.Contains(t, env.Response, "What's your main goal?")
	assert.Contains(t, env.Response, "1. Weight Loss")
	assert.Equal(t, StateOnboarding, c.GetUserProfile().State())

	// A greeting is consumed as the goal answer.
	env = c.ProcessMessage("hello")
	assert.Equal(t, TypeProfileUpdate, env.Type)
	assert.Contains(t, env.Response, "Great! **General Health** it is!")
	p := c.GetUserProfile()
	assert.Equal(t, GoalGeneralHealth, p.Goal)
	assert.Equal(t, 2, p.OnboardingStep)

	// Off-topic text is consumed as the diet answer.
	env = c.ProcessMessage("tell me a joke")
	assert.Equal(t, TypeProfileUpdate, env.Type)
	assert.Equal(t, "Let's make healthy choices together! 💪", env.SupportiveMessage)
	p = c.GetUserProfile()
	assert.True(t, p.OnboardingComplete)
	assert.Equal(t, DietNone, p.DietPreference)

	assert.Equal(t, TypeOffTopic, c.ProcessMessage("tell me a joke").Type)
}

func TestOnboarding_NumericAnswers(t *testing.T) {
	c := NewConversation(newTestEngine(t))

	c.ProcessMessage("start")
	c.ProcessMessage("2")
	env := c.ProcessMessage("2")

	assert.Contains(t, env.Response, "All set! Your profile is ready for **Muscle Gain**!")
	p := c.GetUserProfile()
	assert.Equal(t, GoalMuscleGain, p.Goal)
	assert.Equal(t, DietVegan, p.DietPreference)
	assert.Equal(t, StateActive, p.State())
}

func TestOnboarding_FallbackQuestion(t *testing.T) {
	e := NewEngine(nil, &catalog.Set{}, EngineConfig{Rand: FixedRand(0)})
	c := NewConversation(e)

	env := c.ProcessMessage("start")
	assert.Equal(t, fallbackGoalPrompt, env.Response)

	env = c.ProcessMessage("1")
	assert.Contains(t, env.Response, "Perfect! **Weight Loss** goal set!")
	assert.Equal(t, "Let's crush your goals together! 💪", env.SupportiveMessage)

	p := c.GetUserProfile()
	assert.Equal(t, GoalWeightLoss, p.Goal)
	assert.True(t, p.OnboardingComplete)
}

func TestOnboarding_SingleQuestion(t *testing.T) {
	set := &catalog.Set{Questions: &catalog.QuestionSet{Questions: []catalog.Question{
		{Question: "Pick a goal", Options: goalOptions},
	}}}
	c := NewConversation(NewEngine(nil, set, EngineConfig{Rand: FixedRand(0)}))

	env := c.ProcessMessage("start")
	assert.Contains(t, env.Response, "Pick a goal")

	env = c.ProcessMessage("muscle please")
	assert.Contains(t, env.Response, "Perfect! **Muscle Gain** goal set!")
	assert.True(t, c.GetUserProfile().OnboardingComplete)
}

func TestOnboarding_Retrigger(t *testing.T) {
	c := NewConversation(newTestEngine(t))
	goal := GoalWeightLoss
	done := true
	require.NoError(t, c.SetUserProfile(ProfileUpdate{Goal: &goal, OnboardingComplete: &done}))

	env := c.ProcessMessage("i want to change my goal")
	assert.Equal(t, TypeProfileUpdate, env.Type)

	p := c.GetUserProfile()
	assert.False(t, p.OnboardingComplete)
	assert.Equal(t, 1, p.OnboardingStep)
	assert.Equal(t, GoalWeightLoss, p.Goal)
}

func TestOnboarding_StrayStep(t *testing.T) {
	e := newTestEngine(t)
	p := NewUserProfile()
	p.OnboardingStep = 5

	turn := e.Respond(p, "anything")

	assert.Equal(t, TypeProfileUpdate, turn.Envelope.Type)
	assert.True(t, turn.Profile.OnboardingComplete)
}
