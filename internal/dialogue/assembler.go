package dialogue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
)

// Message bank keys.
const (
	KeyHealthyChoice  = "healthy_choice"
	KeyEncouragement  = "encouragement"
	KeyDangerousMyth  = "dangerous_myth"
	KeyGuiltOrRelapse = "guilt_or_relapse"
	KeyFirstTimeUser  = "first_time_user"
	KeyConfused       = "confused"
)

// Assembler renders matched entities into reply text and picks supportive lines.
type Assembler struct {
	bank catalog.MessageBank
	rng  RandSource
}

// NewAssembler returns an assembler over a message bank.
func NewAssembler(bank catalog.MessageBank, rng RandSource) *Assembler {
	if rng == nil {
		rng = globalRand{}
	}
	return &Assembler{bank: bank, rng: rng}
}

// Supportive picks a line for key. An empty or missing bank falls back to
// the default line.
func (a *Assembler) Supportive(key string) string {
	return a.supportiveOr(key, catalog.DefaultSupportiveMessage)
}

// supportiveOr picks a line for key or returns fallback.
func (a *Assembler) supportiveOr(key, fallback string) string {
	if msg := pick(a.rng, a.bank.Messages(key)); msg != "" {
		return msg
	}
	return fallback
}

// FoodSupportiveKey selects the bank for a food verdict.
func FoodSupportiveKey(v catalog.FoodVerdict) string {
	if v == catalog.VerdictGoodChoice {
		return KeyHealthyChoice
	}
	return KeyEncouragement
}

// MythSupportiveKey selects the bank for a myth.
func MythSupportiveKey(m catalog.MythEntry) string {
	if m.HarmLevel >= 4 {
		return KeyDangerousMyth
	}
	return KeyEncouragement
}

// MythUI maps a verdict and harm level to avatar hints.
func MythUI(v catalog.MythVerdict, harm int) catalog.UIEffects {
	switch {
	case v == catalog.VerdictMyth && harm >= 4:
		return uiMeter("serious", "#FF4B6E", 0.2)
	case v == catalog.VerdictMyth:
		return uiMeter("warning", "#FF9800", 0.5)
	case v == catalog.VerdictPartiallyTrue:
		return uiMeter("explaining", "#FFC857", 0.6)
	default:
		return uiMeter("happy", "#4CAF50", 0.8)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FoodText renders the food information block.
func FoodText(f catalog.FoodEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", f.DisplayName)
	b.WriteString("📊 **Nutrition (per serving):**\n")
	fmt.Fprintf(&b, "• Calories: %s kcal\n", num(f.CaloriesPerServing))
	fmt.Fprintf(&b, "• Protein: %sg | Carbs: %sg | Fat: %sg\n",
		num(f.Macros.ProteinG), num(f.Macros.CarbsG), num(f.Macros.FatG))
	fmt.Fprintf(&b, "• Sugar: %sg | Fiber: %sg | Sodium: %smg\n\n",
		num(f.SugarG), num(f.FibreG), num(f.SodiumMg))

	if f.Notes != "" {
		fmt.Fprintf(&b, "🔍 **My take:** %s\n\n", f.Notes)
	}

	switch f.Verdict {
	case catalog.VerdictGoodChoice:
		b.WriteString("✅ This is a solid choice for your goals!\n\n")
	case catalog.VerdictTreat:
		b.WriteString("⚠️ Keep this as an occasional treat.\n\n")
	case catalog.VerdictOccasionalIndulgence:
		b.WriteString("🟡 Enjoy occasionally, not regularly.\n\n")
	}

	if len(f.HealthierSwaps) > 0 {
		b.WriteString("💡 **Healthier tips:**\n")
		for i, swap := range f.HealthierSwaps {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "• %s\n", swap)
		}
		b.WriteString("\n")
	}

	if e := f.Evidence; e != nil {
		fmt.Fprintf(&b, "📚 **Evidence:** %s\n", e.Statistic)
		fmt.Fprintf(&b, "Source: %s (%d)\n", e.SourceName, e.Year)
	}

	return b.String()
}

// MythText renders the myth verdict block, personalised to goal.
func MythText(m catalog.MythEntry, goal Goal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Myth: %s**\n\n", m.Label)

	if m.HasTag("tiktok") || m.HasTag("instagram") || m.HasTag("social_media") {
		b.WriteString("🎯 **Common TikTok/Instagram claim**\n\n")
	}

	switch m.Verdict {
	case catalog.VerdictMyth:
		b.WriteString("❌ **Verdict: MYTH** - This is NOT true\n\n")
	case catalog.VerdictPartiallyTrue:
		b.WriteString("⚠️ **Verdict: PARTIALLY TRUE** - There's more to it\n\n")
	default:
		b.WriteString("✅ **Verdict: TRUE**\n\n")
	}

	fmt.Fprintf(&b, "💬 **The Truth:** %s\n\n", m.Explanation)

	if e := m.Evidence; e != nil {
		fmt.Fprintf(&b, "📚 **Evidence:** %s\n", e.Statistic)
		if e.Quote != "" {
			fmt.Fprintf(&b, "\n_%s_\n", e.Quote)
		}
		fmt.Fprintf(&b, "\nSource: %s (%d)\n\n", e.SourceName, e.Year)
	}

	if tip, ok := m.Tips[string(goal)]; ok && goal != GoalNone {
		fmt.Fprintf(&b, "💡 **For your %s goal:**\n%s\n\n", goal.Words(), tip)
	} else if tip, ok := m.Tips["general"]; ok {
		fmt.Fprintf(&b, "💡 **Tip:** %s\n\n", tip)
	}

	switch {
	case m.HarmLevel >= 4:
		b.WriteString("⚠️ **WARNING:** This myth can be harmful to your health. Please be very careful!\n\n")
	case m.HarmLevel >= 3:
		b.WriteString("⚠️ **Caution:** Following this advice may negatively impact your health goals.\n\n")
	}

	b.WriteString("Want to check another myth? Ask me about detox teas, eating late, or any other nutrition claim!")
	return b.String()
}
