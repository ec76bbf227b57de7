package dialogue

import (
	"regexp"
	"strings"

	"github.com/aishuu11/hackathon-2025/internal/textnorm"
)

// adviceTopic is one canned general-advice block. Extra adds profile-aware
// lines after the shared body.
type adviceTopic struct {
	Name       string
	Pattern    *regexp.Regexp
	Body       string
	Extra      func(goal Goal) string
	Mood       string
	Supportive string
}

// AdviceTopicNames lists the advice topics in match order.
func AdviceTopicNames() []string {
	names := make([]string, len(adviceTopics))
	for i, t := range adviceTopics {
		names[i] = t.Name
	}
	return names
}

// AdviceTopic returns the advice topic a general-advice message is answered
// from, or "default" when none of the topics match.
func AdviceTopic(message string) string {
	raw := strings.TrimSpace(message)
	if t := matchAdviceTopic(request{raw: raw, normalized: textnorm.NormalizeSpace(raw)}); t != nil {
		return t.Name
	}
	return "default"
}

var adviceTopics = []adviceTopic{
	{
		Name:    "weight_loss",
		Pattern: regexp.MustCompile(`\b(lose|losing|loss).*weight\b|\bweight.*loss\b|\bslim\b|\bshed\b`),
		Body: "**Weight Loss Advice:**\n\n" +
			"Sustainable weight loss is about consistent habits, not quick fixes:\n\n" +
			"• Create a moderate calorie deficit (300-500 cal/day)\n" +
			"• Focus on whole, unprocessed foods\n" +
			"• Include protein at each meal (keeps you full)\n" +
			"• Stay hydrated - drink water before meals\n" +
			"• Get enough sleep (affects hunger hormones)\n" +
			"• Move more, but don't over-exercise\n\n" +
			"🎯 **Realistic goal:** 0.5-1 kg per week\n\n",
		Extra: func(goal Goal) string {
			if goal == GoalMuscleGain {
				return "💡 Your goal is muscle gain, so keep protein high if you trim calories.\n\n"
			}
			return ""
		},
		Mood:       "coach",
		Supportive: "Small, consistent changes beat crash diets every time! 💪",
	},
	{
		Name:    "muscle_gain",
		Pattern: regexp.MustCompile(`\b(gain|build|grow).*muscle\b|\bmuscle.*(gain|build)\b|\bbulk\b`),
		Body: "**Muscle Building Advice:**\n\n" +
			"Building muscle requires the right nutrition + training:\n\n" +
			"• Eat in a slight calorie surplus (200-300 cal/day)\n" +
			"• Protein: 1.6-2.2g per kg body weight daily\n" +
			"• Don't fear carbs - they fuel your workouts!\n" +
			"• Strength train 3-5x per week\n" +
			"• Get 7-9 hours of sleep (recovery is key)\n" +
			"• Be patient - muscle grows slowly\n\n" +
			"💡 **Good protein sources:** Chicken, fish, eggs, Greek yogurt, tofu, legumes\n\n",
		Mood:       "coach",
		Supportive: "Consistency in the gym AND the kitchen = gains! 💪",
	},
	{
		Name:    "healthy_eating",
		Pattern: regexp.MustCompile(`\beat.*health|\bhealthy.*eat|\beat.*better|\bclean.*eat`),
		Body: "**Eating Healthier:**\n\n" +
			"Here's a simple framework:\n\n" +
			"• Fill half your plate with vegetables\n" +
			"• Choose whole grains over refined (brown rice > white)\n" +
			"• Include lean protein at each meal\n" +
			"• Add healthy fats (nuts, avocado, olive oil)\n" +
			"• Limit added sugars and ultra-processed foods\n" +
			"• Stay hydrated with water, not sugary drinks\n\n" +
			"💡 **80/20 rule:** Be mindful 80% of the time, enjoy treats 20%\n\n",
		Mood:       "happy",
		Supportive: "Progress, not perfection! Every healthy choice counts. 🌟",
	},
	{
		Name:    "sugar_reduction",
		Pattern: regexp.MustCompile(`\breduce.*sugar\b|\bsugar.*reduc|\bcut.*sugar\b|\bless.*sugar\b`),
		Body: "**Reducing Sugar Intake:**\n\n" +
			"The WHO recommends less than 10% of calories from added sugars (ideally <5%):\n\n" +
			"• **For 2000 cal diet:** Max 50g, ideally 25g added sugar/day\n" +
			"• Read labels - sugar hides in sauces, bread, yogurt\n" +
			"• Choose water or unsweetened tea over soft drinks\n" +
			"• Reduce sugar in bubble tea (0-25% instead of full)\n" +
			"• Eat fruit instead of fruit juice\n" +
			"• Natural sugars in whole fruits are OK!\n\n" +
			"🍬 **One can of soft drink = ~10 teaspoons of sugar**\n\n",
		Mood:       "coach",
		Supportive: "Small swaps make a big difference! You've got this! 💚",
	},
	{
		Name:    "protein_needs",
		Pattern: regexp.MustCompile(`\bprotein\b.*\bhow much\b|\bhow much.*protein\b`),
		Body: "**Protein Needs:**\n\n" +
			"Depends on your activity level and goals:\n\n" +
			"• Sedentary: 0.8g per kg body weight/day\n" +
			"• Active: 1.2-1.6g per kg\n" +
			"• Building muscle: 1.6-2.2g per kg\n" +
			"• Losing weight: 1.6-2.0g per kg (preserves muscle)\n\n",
		Extra: func(goal Goal) string {
			var s string
			switch goal {
			case GoalMuscleGain:
				s = "🎯 **For muscle gain:** Aim for the higher end (1.8-2.2g/kg)\n\n"
			case GoalWeightLoss:
				s = "🎯 **For weight loss:** Higher protein helps maintain muscle (1.6-2.0g/kg)\n\n"
			}
			return s + "**Good sources:** Chicken breast, fish, eggs, Greek yogurt, tofu, lentils\n\n"
		},
		Mood:       "explaining",
		Supportive: "Protein is your friend for any fitness goal! 💪",
	},
	{
		Name:    "intermittent_fasting",
		Pattern: regexp.MustCompile(`\bintermittent fasting\b|\b16.8\b|\bfasting\b`),
		Body: "**Intermittent Fasting (IF):**\n\n" +
			"IF is an eating pattern (time-restricted), not a diet. Common methods:\n\n" +
			"• 16:8 - Fast 16 hours, eat within 8 hours\n" +
			"• 5:2 - Eat normally 5 days, restrict 2 days\n\n" +
			"📊 **What research shows:**\n" +
			"• May help weight loss (mainly through calorie reduction)\n" +
			"• Some metabolic benefits reported\n" +
			"• NOT superior to regular calorie restriction\n" +
			"• Doesn't \"boost metabolism\" as claimed on social media\n\n" +
			"⚠️ **Not for everyone:**\n" +
			"• History of eating disorders\n" +
			"• Pregnant/breastfeeding\n" +
			"• Certain medical conditions\n\n",
		Mood:       "explaining",
		Supportive: "Listen to your body - what works for influencers may not work for you! 🎯",
	},
}

// upperIFRe catches the "IF" abbreviation, which only makes sense uppercase.
var upperIFRe = regexp.MustCompile(`\bIF\b`)

var adviceFollowUps = map[string]string{
	"weight_loss":          "Want me to analyze a specific food? Try asking about bubble tea or nasi lemak!",
	"muscle_gain":          "Ask me about specific high-protein foods!",
	"healthy_eating":       "Want to know about a specific food? Just ask!",
	"sugar_reduction":      "Want me to check the sugar in bubble tea or other drinks?",
	"protein_needs":        "Ask me about specific high-protein foods!",
	"intermittent_fasting": "💡 The best diet is one you can sustain long-term!",
}

// adviceFor returns the general advice reply for a message.
func (e *Engine) adviceFor(req request, p UserProfile) (Envelope, string) {
	topic := matchAdviceTopic(req)
	if topic == nil {
		return e.defaultAdvice(p), "default"
	}

	var b strings.Builder
	b.WriteString(topic.Body)
	if topic.Extra != nil {
		b.WriteString(topic.Extra(p.Goal))
	}
	if note := dietNote(topic.Name, p.DietPreference); note != "" {
		b.WriteString(note)
	}
	b.WriteString(adviceFollowUps[topic.Name])

	return textEnvelope(TypeGeneralAdvice, b.String(), ui(topic.Mood, "#4CAF50"), topic.Supportive), topic.Name
}

func matchAdviceTopic(req request) *adviceTopic {
	for i := range adviceTopics {
		t := &adviceTopics[i]
		if t.Pattern.MatchString(req.normalized) {
			return t
		}
		if t.Name == "intermittent_fasting" && upperIFRe.MatchString(req.raw) {
			return t
		}
	}
	return nil
}

// dietNote adds plant-based protein hints for protein-heavy topics.
func dietNote(topic string, diet DietPreference) string {
	if topic != "muscle_gain" && topic != "protein_needs" {
		return ""
	}
	switch diet {
	case DietVegan:
		return "🌱 **Plant-based picks:** Tofu, tempeh, lentils, chickpeas, edamame, seitan\n\n"
	case DietVegetarian:
		return "🥚 **Vegetarian picks:** Eggs, Greek yogurt, paneer, tofu, lentils\n\n"
	}
	return ""
}

func (e *Engine) defaultAdvice(p UserProfile) Envelope {
	var b strings.Builder
	b.WriteString("**General Nutrition Guidance:**\n\n")
	b.WriteString("Here are evidence-based nutrition principles:\n\n")
	b.WriteString("• Eat mostly whole, minimally processed foods\n")
	b.WriteString("• Include plenty of vegetables and fruits\n")
	b.WriteString("• Choose whole grains over refined grains\n")
	b.WriteString("• Include lean proteins and healthy fats\n")
	b.WriteString("• Stay hydrated with water\n")
	b.WriteString("• Limit added sugars and ultra-processed foods\n")
	b.WriteString("• Practice portion awareness\n")
	b.WriteString("• Be consistent, not perfect\n\n")

	if p.Goal != GoalNone {
		b.WriteString("🎯 **Based on your " + p.Goal.Words() + " goal:** ")
		switch p.Goal {
		case GoalWeightLoss:
			b.WriteString("Focus on calorie control and filling, nutritious foods.\n\n")
		case GoalMuscleGain:
			b.WriteString("Ensure adequate protein and calories to support growth.\n\n")
		default:
			b.WriteString("Maintain a balanced, varied diet.\n\n")
		}
	}

	b.WriteString("Want specific advice? Ask about a food, myth, or your goal!")
	return textEnvelope(TypeGeneralAdvice, b.String(), ui("happy", "#4CAF50"),
		"Small, sustainable changes lead to lasting results! 🌟")
}
