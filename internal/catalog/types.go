// Package catalog holds the static, read-only domain records the bot answers
// from: foods, myths, supportive messages and onboarding questions.
package catalog

// FoodVerdict classifies how often a food fits a healthy diet.
type FoodVerdict string

const (
	VerdictGoodChoice           FoodVerdict = "good_choice"
	VerdictTreat                FoodVerdict = "treat"
	VerdictOccasionalIndulgence FoodVerdict = "occasional_indulgence"
)

// MythVerdict says whether a claim holds up.
type MythVerdict string

const (
	VerdictMyth          MythVerdict = "myth"
	VerdictPartiallyTrue MythVerdict = "partially_true"
	VerdictTrue          MythVerdict = "true"
)

// UIEffects are avatar and hologram hints for the front end.
type UIEffects struct {
	AvatarMood    string   `json:"avatar_mood,omitempty"`
	HologramColor string   `json:"hologram_color,omitempty"`
	MeterValue    *float64 `json:"meter_value,omitempty"`
}

// Macros are per-serving macronutrients in grams.
type Macros struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// FoodEvidence cites a statistic about a food.
type FoodEvidence struct {
	Statistic  string `json:"statistic"`
	SourceName string `json:"source_name"`
	Year       int    `json:"year"`
}

// FoodEntry describes one food. Key is the catalog identifier.
type FoodEntry struct {
	Key                string        `json:"key"`
	DisplayName        string        `json:"display_name"`
	Keywords           []string      `json:"keywords,omitempty"`
	Macros             Macros        `json:"macros"`
	CaloriesPerServing float64       `json:"calories_per_serving"`
	SugarG             float64       `json:"sugar_g"`
	FibreG             float64       `json:"fibre_g"`
	SodiumMg           float64       `json:"sodium_mg"`
	Verdict            FoodVerdict   `json:"verdict"`
	Notes              string        `json:"notes"`
	HealthierSwaps     []string      `json:"healthier_swaps,omitempty"`
	Evidence           *FoodEvidence `json:"evidence,omitempty"`
	UIEffects          UIEffects     `json:"ui_effects"`
}

// MythEvidence backs a myth verdict.
type MythEvidence struct {
	Quote      string `json:"quote,omitempty"`
	Source     string `json:"source,omitempty"`
	Statistic  string `json:"statistic"`
	SourceName string `json:"source_name"`
	Year       int    `json:"year"`
}

// MythEntry is one nutrition claim with its verdict and explanation.
// Tips are keyed by goal name or "general".
type MythEntry struct {
	ID              string            `json:"id,omitempty"`
	Label           string            `json:"label"`
	AltPhrases      []string          `json:"alt_phrases,omitempty"`
	Verdict         MythVerdict       `json:"verdict"`
	VerdictStrength string            `json:"verdict_strength,omitempty"`
	HarmLevel       int               `json:"harm_level"`
	Explanation     string            `json:"explanation"`
	Evidence        *MythEvidence     `json:"evidence,omitempty"`
	Tips            map[string]string `json:"tips,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	UIEffects       UIEffects         `json:"ui_effects"`
}

// HasTag reports whether the myth carries tag.
func (m MythEntry) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Phrases returns the label followed by the alternate phrases.
func (m MythEntry) Phrases() []string {
	out := make([]string, 0, 1+len(m.AltPhrases))
	out = append(out, m.Label)
	return append(out, m.AltPhrases...)
}

// Clone returns a copy that shares no memory with e.
func (e FoodEntry) Clone() FoodEntry {
	out := e
	out.Keywords = cloneStrings(e.Keywords)
	out.HealthierSwaps = cloneStrings(e.HealthierSwaps)
	if e.Evidence != nil {
		ev := *e.Evidence
		out.Evidence = &ev
	}
	out.UIEffects = e.UIEffects.Clone()
	return out
}

// Clone returns a copy that shares no memory with m.
func (m MythEntry) Clone() MythEntry {
	out := m
	out.AltPhrases = cloneStrings(m.AltPhrases)
	out.Tags = cloneStrings(m.Tags)
	if m.Evidence != nil {
		ev := *m.Evidence
		out.Evidence = &ev
	}
	if m.Tips != nil {
		out.Tips = make(map[string]string, len(m.Tips))
		for k, v := range m.Tips {
			out.Tips[k] = v
		}
	}
	out.UIEffects = m.UIEffects.Clone()
	return out
}

// Clone copies the effects, including the meter value.
func (u UIEffects) Clone() UIEffects {
	if u.MeterValue != nil {
		v := *u.MeterValue
		u.MeterValue = &v
	}
	return u
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// Question is one onboarding prompt.
type Question struct {
	ID       string   `json:"id,omitempty"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

// QuestionSet is the ordered onboarding questionnaire.
type QuestionSet struct {
	Questions []Question `json:"questions"`
}

// Len returns the number of questions.
func (q *QuestionSet) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Questions)
}

// At returns question i, if it exists.
func (q *QuestionSet) At(i int) (Question, bool) {
	if q == nil || i < 0 || i >= len(q.Questions) {
		return Question{}, false
	}
	return q.Questions[i], true
}
