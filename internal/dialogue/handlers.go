package dialogue

import (
	"regexp"
	"strings"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
)

// request is one incoming message in its raw and normalized forms.
type request struct {
	raw        string
	normalized string
}

func (e *Engine) handleFood(req request, t *Trace) Envelope {
	m := MatchFood(e.catalogs.Foods, req.normalized, e.match.FoodThreshold)
	t.Score = m.Score
	if !m.Found {
		return e.confused()
	}
	t.MatchKey = m.Food.Key

	supportive := e.assembler.Supportive(FoodSupportiveKey(m.Food.Verdict))
	return foodEnvelope(m.Food, FoodText(m.Food), supportive)
}

func (e *Engine) handleMyth(req request, p UserProfile, t *Trace) Envelope {
	m := MatchMyth(e.catalogs.Myths, req.normalized, e.match)
	t.Score = m.Score
	if !m.Found {
		return textEnvelope(TypeMythInfo,
			"I specialize in debunking common nutrition myths! Try asking about:\n\n"+
				"• 'Do carbs make you fat?'\n"+
				"• 'Does eating late cause weight gain?'\n"+
				"• 'Are detox teas effective?'\n"+
				"• 'Will weights make women bulky?'\n\n"+
				"Or ask me about a specific food like bubble tea or chicken rice!",
			ui("coach", "#4CAF50"),
			"Let's bust some myths together! 💪")
	}
	t.MatchKey = mythKey(m.Myth)
	t.MatchPath = m.Path

	effects := MythUI(m.Myth.Verdict, m.Myth.HarmLevel)
	supportive := e.assembler.Supportive(MythSupportiveKey(m.Myth))
	return mythEnvelope(m.Myth, MythText(m.Myth, p.Goal), effects, supportive)
}

func mythKey(m catalog.MythEntry) string {
	if m.ID != "" {
		return m.ID
	}
	return m.Label
}

var (
	bingeRe = regexp.MustCompile(`\bbinged\b|\boverate\b|\bate too much\b`)
	guiltRe = regexp.MustCompile(`\bfeel (bad|guilty|terrible)\b|\bashamed\b`)
	cheatRe = regexp.MustCompile(`\bcheat (day|meal)\b`)
)

func (e *Engine) handleEmotion(req request) Envelope {
	var b strings.Builder
	b.WriteString("**Hey, I hear you. Let's talk about this. 💚**\n\n")

	switch {
	case bingeRe.MatchString(req.normalized):
		b.WriteString("First: **One episode of overeating doesn't undo your progress.**\n\n")
		b.WriteString("What to do now:\n")
		b.WriteString("• Don't try to \"make up for it\" by skipping meals\n")
		b.WriteString("• Drink water and get back to normal eating\n")
		b.WriteString("• Reflect: Were you overly hungry? Stressed? Bored?\n")
		b.WriteString("• Learn from it, then move forward\n\n")
		b.WriteString("💡 **Normal eating includes flexibility.** Overeating sometimes is part of being human.\n\n")
	case guiltRe.MatchString(req.normalized):
		b.WriteString("**Please don't feel guilty about food.** Food is not moral - it's not \"good\" or \"bad\".\n\n")
		b.WriteString("• You're not a failure for enjoying food\n")
		b.WriteString("• Restriction often leads to cravings and guilt cycles\n")
		b.WriteString("• Balance and flexibility are healthier than perfection\n\n")
		b.WriteString("💡 **Try this mindset:** \"I ate [food], enjoyed it, and now I'm moving on.\"\n\n")
	case cheatRe.MatchString(req.normalized):
		b.WriteString("Let's reframe this: **There's no such thing as \"cheating\" with food.**\n\n")
		b.WriteString("• Using terms like \"cheat\" creates an unhealthy relationship with food\n")
		b.WriteString("• A balanced approach includes all foods in moderation\n")
		b.WriteString("• Enjoy treats without guilt - just be mindful of portions\n\n")
		b.WriteString("💡 **Better mindset:** Call it a \"treat\" or \"fun food\", not a cheat.\n\n")
	}

	b.WriteString("Want practical tips? Ask me: 'How can I eat healthier?' or check a specific food!")

	supportive := e.assembler.supportiveOr(KeyGuiltOrRelapse, catalog.DefaultEmotionMessage)
	return textEnvelope(TypeEmotion, b.String(), ui("coach", "#8BC34A"), supportive)
}

func (e *Engine) handleGreeting(p UserProfile) Envelope {
	if !p.OnboardingComplete {
		intro := e.assembler.supportiveOr(KeyFirstTimeUser,
			"Hi! I'm your nutrition chatbot, here to help you make informed food choices!")

		var b strings.Builder
		b.WriteString(intro + "\n\n")
		b.WriteString("**I specialize in:**\n")
		b.WriteString("🍽️ Analyzing specific foods (nutrition, healthier swaps)\n")
		b.WriteString("❌ Debunking nutrition myths from TikTok/Instagram\n")
		b.WriteString("💡 Giving personalized advice for your goals\n\n")
		b.WriteString("**Want personalized tips?** Type 'start' to set your goal!\n\n")
		b.WriteString("**Or just ask me:**\n")
		b.WriteString("• 'Tell me about bubble tea'\n")
		b.WriteString("• 'Is it true that carbs make you fat?'\n")
		b.WriteString("• 'How can I lose weight healthily?'\n")

		return textEnvelope(TypeGreeting, b.String(), ui("happy", "#4CAF50"),
			"Let's make nutrition simple and science-based! 🌟")
	}

	goalText := ""
	if p.Goal != GoalNone {
		goalText = " with your " + p.Goal.Words() + " goal"
	}
	text := "Welcome back! Ready to continue" + goalText + "?\n\n" +
		"Ask me about any food, nutrition myth, or health question!"
	return textEnvelope(TypeGreeting, text, ui("happy", "#4CAF50"), "")
}

var offTopicOpeners = []string{
	"Haha, that's not my area! I'm your **nutrition expert** - I specialize in food, diets, and busting nutrition myths.",
	"That's a fun question, but I'm here to help with **nutrition and healthy eating!**",
	"I'd love to chat about that, but I'm a **nutrition bot** - I stick to food and health topics!",
}

func (e *Engine) handleOffTopic() Envelope {
	text := pick(e.rng, offTopicOpeners) +
		"\n\n**I can help you with:**\n" +
		"• Analyzing specific foods (bubble tea, chicken rice, etc.)\n" +
		"• Debunking nutrition myths from TikTok/Instagram\n" +
		"• General nutrition advice for your goals\n\n" +
		"What nutrition topic interests you?"
	return textEnvelope(TypeOffTopic, text, ui("happy", "#2196F3"), "")
}

func (e *Engine) confused() Envelope {
	intro := e.assembler.supportiveOr(KeyConfused,
		"I'm not sure what you're asking. Try asking about a specific food or myth!")

	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n**Here are some things you can ask me:**\n\n")
	b.WriteString("🍽️ **About specific foods:**\n")
	b.WriteString("• 'Tell me about bubble tea'\n")
	b.WriteString("• 'What about chicken rice?'\n")
	b.WriteString("• 'Is nasi lemak healthy?'\n\n")
	b.WriteString("❓ **About nutrition myths:**\n")
	b.WriteString("• 'Is it true that carbs make you fat?'\n")
	b.WriteString("• 'Does eating late at night cause weight gain?'\n\n")
	b.WriteString("💡 **General nutrition:**\n")
	b.WriteString("• 'How much sugar should I take?'\n")
	b.WriteString("• 'Tell me about protein'\n")
	b.WriteString("• 'What about intermittent fasting?'\n")

	return textEnvelope(TypeConfused, b.String(), ui("confused", "#FFC857"), "")
}
