package dialogue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
)

// fallbackGoalPrompt is used when no question set is loaded.
const fallbackGoalPrompt = "**Let's personalize your experience!**\n\n" +
	"What's your main goal?\n\n" +
	"Type:\n" +
	"• **1** for Weight Loss\n" +
	"• **2** for Muscle Gain\n" +
	"• **3** for General Health"

var fallbackGoals = []Goal{GoalWeightLoss, GoalMuscleGain, GoalGeneralHealth}

var (
	choiceRe = regexp.MustCompile(`^(\d+)[.):]?$`)
	vegRe    = regexp.MustCompile(`\bveg\b|vegetarian`)
)

// startOnboarding resets the questionnaire to step 1 and returns the first
// prompt.
func (e *Engine) startOnboarding(p UserProfile) (UserProfile, Envelope) {
	p.OnboardingStep = 1
	p.OnboardingComplete = false

	q, ok := e.catalogs.Questions.At(0)
	if !ok {
		return p, textEnvelope(TypeProfileUpdate, fallbackGoalPrompt, ui("coach", "#2196F3"), "")
	}
	text := "**Let's personalize your experience!**\n\n" + renderQuestion(q)
	return p, textEnvelope(TypeProfileUpdate, text, ui("coach", "#2196F3"), "")
}

// continueOnboarding consumes one answer and advances the questionnaire.
func (e *Engine) continueOnboarding(p UserProfile, answer string) (UserProfile, Envelope) {
	questions := e.catalogs.Questions

	switch p.OnboardingStep {
	case 1:
		q, _ := questions.At(0)
		p.Goal = ParseGoal(answer, q.Options)
		title := p.Goal.Title()

		if next, ok := questions.At(1); ok {
			p.OnboardingStep = 2
			text := fmt.Sprintf("Great! **%s** it is! 🎯\n\n", title) + renderQuestion(next)
			return p, textEnvelope(TypeProfileUpdate, text, ui("coach", "#2196F3"), "")
		}

		p.OnboardingComplete = true
		var b strings.Builder
		fmt.Fprintf(&b, "Perfect! **%s** goal set! 🎯\n\n", title)
		b.WriteString("I'll now tailor my advice to help you achieve this goal.\n\n")
		b.WriteString("**Ready to start?** Ask me:\n")
		b.WriteString("• About any specific food\n")
		b.WriteString("• To debunk a nutrition myth\n")
		fmt.Fprintf(&b, "• 'How can I %s?'\n", strings.ToLower(title))
		return p, textEnvelope(TypeProfileUpdate, b.String(), ui("happy", "#4CAF50"),
			"Let's crush your goals together! 💪")

	case 2:
		q, _ := questions.At(1)
		p.DietPreference = ParseDiet(answer, q.Options)
		p.OnboardingComplete = true
		title := p.Goal.Title()

		var b strings.Builder
		fmt.Fprintf(&b, "All set! Your profile is ready for **%s**! 🎯\n\n", title)
		b.WriteString("I'll give you personalized advice tailored to your goals.\n\n")
		b.WriteString("**Ask me anything:**\n")
		b.WriteString("• 'Tell me about chicken rice'\n")
		b.WriteString("• 'Do carbs make you fat?'\n")
		fmt.Fprintf(&b, "• 'Tips for %s?'\n", strings.ToLower(title))
		return p, textEnvelope(TypeProfileUpdate, b.String(), ui("happy", "#4CAF50"),
			"Let's make healthy choices together! 💪")
	}

	p.OnboardingComplete = true
	return p, textEnvelope(TypeProfileUpdate, "Profile updated! Ask me anything about nutrition!",
		ui("happy", "#4CAF50"), "")
}

func renderQuestion(q catalog.Question) string {
	var b strings.Builder
	b.WriteString(q.Question)
	b.WriteString("\n\n")
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	return b.String()
}

// numericChoice returns the 1-based choice when the answer starts with a
// number.
func numericChoice(answer string) (int, bool) {
	fields := strings.Fields(answer)
	if len(fields) == 0 {
		return 0, false
	}
	m := choiceRe.FindStringSubmatch(fields[0])
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseGoal interprets an answer to the goal question. Ambiguous answers
// select general_health.
func ParseGoal(answer string, options []string) Goal {
	text := answerText(answer)

	if n, ok := numericChoice(text); ok {
		switch {
		case len(options) > 0 && n >= 1 && n <= len(options):
			text = strings.ToLower(options[n-1])
		case len(options) == 0 && n >= 1 && n <= len(fallbackGoals):
			return fallbackGoals[n-1]
		}
	}

	switch {
	case strings.Contains(text, "weight loss"), strings.Contains(text, "lose"):
		return GoalWeightLoss
	case strings.Contains(text, "muscle"), strings.Contains(text, "gain"):
		return GoalMuscleGain
	default:
		return GoalGeneralHealth
	}
}

// answerText lowercases an answer and spells stored values like
// "weight_loss" or "no-pork" as words.
func answerText(answer string) string {
	return answerSepReplacer.Replace(strings.ToLower(strings.TrimSpace(answer)))
}

var answerSepReplacer = strings.NewReplacer("_", " ", "-", " ")

// ParseDiet interprets an answer to the dietary preference question.
// Unrecognised answers return DietNone.
func ParseDiet(answer string, options []string) DietPreference {
	text := answerText(answer)

	if n, ok := numericChoice(text); ok && n >= 1 && n <= len(options) {
		text = strings.ToLower(options[n-1])
	}

	switch {
	case strings.Contains(text, "vegan"):
		return DietVegan
	case vegRe.MatchString(text):
		return DietVegetarian
	case strings.Contains(text, "no pork"), strings.Contains(text, "halal"):
		return DietNoPork
	default:
		return DietNone
	}
}
