package dialogue

import (
	"regexp"
	"strings"
)

// UserContext is what a single message reveals about the user. It is
// informational and never written back to the profile.
type UserContext struct {
	Goal      Goal           `json:"goal,omitempty"`
	Diet      DietPreference `json:"diet,omitempty"`
	LowCarb   bool           `json:"low_carb,omitempty"`
	Condition string         `json:"condition,omitempty"`
	Summary   string         `json:"summary"`
}

// Empty reports whether nothing was detected.
func (c UserContext) Empty() bool {
	return c.Goal == GoalNone && c.Diet == DietNone && !c.LowCarb && c.Condition == ""
}

// Health conditions recognised by ExtractUserContext.
const (
	ConditionDiabetes  = "diabetes"
	ConditionPregnancy = "pregnancy"
)

// contextCue matches whole words or phrases only, so "cut" does not fire on
// "haircut" or "executive".
type contextCue struct {
	re      *regexp.Regexp
	summary string
}

func cue(summary string, words ...string) contextCue {
	return contextCue{
		re:      regexp.MustCompile(`\b(?:` + strings.Join(words, "|") + `)\b`),
		summary: summary,
	}
}

var (
	goalCues = []struct {
		goal Goal
		contextCue
	}{
		{GoalWeightLoss, cue("User wants to lose weight", "lose weight", "weight loss", "fat loss", "slim down", "cut", "cutting")},
		{GoalMuscleGain, cue("User wants to gain muscle", "gain muscle", "build muscle", "bulk", "bulking", "get stronger", "bodybuilding")},
		{GoalGeneralHealth, cue("User focused on general health", "maintain", "maintaining", "stay healthy", "general health")},
	}
	dietCues = []struct {
		diet DietPreference
		contextCue
	}{
		{DietVegan, cue("User is vegan", "vegans?")},
		{DietVegetarian, cue("User is vegetarian", "vegetarians?")},
	}
	lowCarbCue    = cue("User follows keto/low-carb diet", "keto", "ketogenic", "low carb")
	conditionCues = []struct {
		condition string
		contextCue
	}{
		{ConditionDiabetes, cue("User has diabetes concerns", "diabetic", "diabetes", "blood sugar")},
		{ConditionPregnancy, cue("User is pregnant", "pregnant", "pregnancy")},
	}
)

func (c contextCue) in(text string) bool {
	return c.re.MatchString(text)
}

// ExtractUserContext detects goal, diet, low-carb and health-condition cues in
// a message. The first matching cue wins within each group.
func ExtractUserContext(message string) UserContext {
	text := strings.ToLower(message)
	var ctx UserContext
	var parts []string

	for _, g := range goalCues {
		if g.in(text) {
			ctx.Goal = g.goal
			parts = append(parts, g.summary)
			break
		}
	}
	for _, d := range dietCues {
		if d.in(text) {
			ctx.Diet = d.diet
			parts = append(parts, d.summary)
			break
		}
	}
	if lowCarbCue.in(text) {
		ctx.LowCarb = true
		parts = append(parts, lowCarbCue.summary)
	}
	for _, c := range conditionCues {
		if c.in(text) {
			ctx.Condition = c.condition
			parts = append(parts, c.summary)
			break
		}
	}

	if len(parts) > 0 {
		ctx.Summary = strings.Join(parts, ". ") + "."
	}
	return ctx
}
