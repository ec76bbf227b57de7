package dialogue

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Goal is the user's main nutrition goal.
type Goal string

const (
	GoalNone          Goal = ""
	GoalWeightLoss    Goal = "weight_loss"
	GoalMuscleGain    Goal = "muscle_gain"
	GoalGeneralHealth Goal = "general_health"
)

// Valid reports whether g is unset or a known goal.
func (g Goal) Valid() bool {
	switch g {
	case GoalNone, GoalWeightLoss, GoalMuscleGain, GoalGeneralHealth:
		return true
	}
	return false
}

// Words renders the goal for copy, e.g. "weight loss".
func (g Goal) Words() string {
	return strings.ReplaceAll(string(g), "_", " ")
}

// Title renders the goal title-cased, e.g. "Weight Loss".
func (g Goal) Title() string {
	words := strings.Fields(g.Words())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// MarshalJSON writes an unset goal as null.
func (g Goal) MarshalJSON() ([]byte, error) {
	return nullableString(string(g))
}

// DietPreference is an optional dietary restriction.
type DietPreference string

const (
	DietNone       DietPreference = ""
	DietVegetarian DietPreference = "vegetarian"
	DietVegan      DietPreference = "vegan"
	DietNoPork     DietPreference = "no_pork"
)

// Valid reports whether d is unset or a known preference.
func (d DietPreference) Valid() bool {
	switch d {
	case DietNone, DietVegetarian, DietVegan, DietNoPork:
		return true
	}
	return false
}

// MarshalJSON writes an unset preference as null.
func (d DietPreference) MarshalJSON() ([]byte, error) {
	return nullableString(string(d))
}

// ActivityLevel is a free-form activity description.
type ActivityLevel string

// MarshalJSON writes an unset level as null.
func (a ActivityLevel) MarshalJSON() ([]byte, error) {
	return nullableString(string(a))
}

func nullableString(s string) ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(s)
}

// UserProfile is the per-session state the dialogue reads and updates.
type UserProfile struct {
	Goal               Goal           `json:"goal"`
	DietPreference     DietPreference `json:"diet_preference"`
	Allergies          []string       `json:"allergies"`
	HealthConditions   []string       `json:"health_conditions"`
	ActivityLevel      ActivityLevel  `json:"activity_level"`
	OnboardingComplete bool           `json:"onboarding_complete"`
	OnboardingStep     int            `json:"onboarding_step"`
}

// NewUserProfile returns the all-defaults profile a session starts with.
func NewUserProfile() UserProfile {
	return UserProfile{Allergies: []string{}, HealthConditions: []string{}}
}

// Clone returns a deep copy.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Allergies = append([]string{}, p.Allergies...)
	out.HealthConditions = append([]string{}, p.HealthConditions...)
	return out
}

// State is the onboarding state derived from the profile.
type State string

const (
	StateFresh      State = "fresh"
	StateOnboarding State = "onboarding"
	StateActive     State = "active"
)

// State reports where the profile is in the onboarding flow.
func (p UserProfile) State() State {
	switch {
	case p.OnboardingComplete:
		return StateActive
	case p.OnboardingStep > 0:
		return StateOnboarding
	default:
		return StateFresh
	}
}

// Onboarding reports whether every message must go to the onboarding flow.
func (p UserProfile) Onboarding() bool {
	return !p.OnboardingComplete && p.OnboardingStep > 0
}

// ProfileUpdate is a partial profile. Nil fields are left unchanged.
type ProfileUpdate struct {
	Goal               *Goal           `json:"goal,omitempty"`
	DietPreference     *DietPreference `json:"diet_preference,omitempty"`
	Allergies          []string        `json:"allergies,omitempty"`
	HealthConditions   []string        `json:"health_conditions,omitempty"`
	ActivityLevel      *ActivityLevel  `json:"activity_level,omitempty"`
	OnboardingComplete *bool           `json:"onboarding_complete,omitempty"`
	OnboardingStep     *int            `json:"onboarding_step,omitempty"`
}

// Validate rejects unknown enum values and negative steps.
func (u ProfileUpdate) Validate() error {
	if u.Goal != nil && !u.Goal.Valid() {
		return fmt.Errorf("unknown goal %q", *u.Goal)
	}
	if u.DietPreference != nil && !u.DietPreference.Valid() {
		return fmt.Errorf("unknown diet preference %q", *u.DietPreference)
	}
	if u.OnboardingStep != nil && *u.OnboardingStep < 0 {
		return fmt.Errorf("onboarding step must be >= 0, got %d", *u.OnboardingStep)
	}
	return nil
}

// Apply returns p with the update's non-nil fields merged in.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	out := p.Clone()
	if u.Goal != nil {
		out.Goal = *u.Goal
	}
	if u.DietPreference != nil {
		out.DietPreference = *u.DietPreference
	}
	if u.Allergies != nil {
		out.Allergies = append([]string{}, u.Allergies...)
	}
	if u.HealthConditions != nil {
		out.HealthConditions = append([]string{}, u.HealthConditions...)
	}
	if u.ActivityLevel != nil {
		out.ActivityLevel = *u.ActivityLevel
	}
	if u.OnboardingComplete != nil {
		out.OnboardingComplete = *u.OnboardingComplete
	}
	if u.OnboardingStep != nil {
		out.OnboardingStep = *u.OnboardingStep
	}
	return out
}
