// Package intent decides what a chat message is asking for.
package intent

import (
	"strings"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
	"github.com/aishuu11/hackathon-2025/internal/textnorm"
)

// Intent is the classified purpose of a message.
type Intent string

const (
	IntentOffTopic      Intent = "off_topic"
	IntentGreeting      Intent = "greeting"
	IntentProfileUpdate Intent = "profile_update"
	IntentEmotion       Intent = "emotion"
	IntentFoodQuery     Intent = "food_query"
	IntentMythQuery     Intent = "myth_query"
	IntentGeneralAdvice Intent = "general_advice"
	IntentUnknown       Intent = "unknown"
)

// Decision records which rule produced an intent.
type Decision struct {
	Intent     Intent  `json:"intent"`
	Rule       string  `json:"rule"`
	Pattern    string  `json:"pattern,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Rule is one row of the cascade. Match reports the pattern or catalog term
// that fired.
type Rule struct {
	Name       string
	Intent     Intent
	Confidence float64
	Match      func(message string) (string, bool)
}

// Classifier evaluates an ordered rule table; the first matching rule wins.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds the standard cascade over the given catalogs.
// Either catalog may be nil.
func NewClassifier(foods *catalog.FoodCatalog, myths *catalog.MythCatalog) *Classifier {
	foodTerms := collectFoodTerms(foods)
	mythTerms := collectMythTerms(myths)

	return &Classifier{rules: []Rule{
		{Name: "off_topic", Intent: IntentOffTopic, Confidence: 0.95, Match: OffTopicPatterns.Match},
		{Name: "greeting", Intent: IntentGreeting, Confidence: 0.95, Match: GreetingPatterns.Match},
		{Name: "profile_trigger", Intent: IntentProfileUpdate, Confidence: 0.9, Match: ProfilePatterns.Match},
		{Name: "emotion", Intent: IntentEmotion, Confidence: 0.9, Match: EmotionPatterns.Match},
		{Name: "food_catalog", Intent: IntentFoodQuery, Confidence: 0.9, Match: containsAny(foodTerms)},
		{Name: "myth_catalog", Intent: IntentMythQuery, Confidence: 0.9, Match: containsAny(mythTerms)},
		{Name: "myth_question", Intent: IntentMythQuery, Confidence: 0.75, Match: MythQuestionPatterns.Match},
		{Name: "advice", Intent: IntentGeneralAdvice, Confidence: 0.75, Match: AdvicePatterns.Match},
		{Name: "nutrition_keyword", Intent: IntentGeneralAdvice, Confidence: 0.6, Match: NutritionKeywordPatterns.Match},
	}}
}

// NewClassifierWithRules builds a classifier over a custom rule table.
func NewClassifierWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Rules returns the rule names in evaluation order.
func (c *Classifier) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}

// Classify returns the intent of message.
func (c *Classifier) Classify(message string) Intent {
	return c.Explain(message).Intent
}

// Explain returns the intent together with the rule and pattern that chose it.
func (c *Classifier) Explain(message string) Decision {
	msg := textnorm.NormalizeSpace(message)
	if msg == "" {
		return Decision{Intent: IntentUnknown, Rule: "empty"}
	}

	for _, r := range c.rules {
		if pattern, ok := r.Match(msg); ok {
			return Decision{Intent: r.Intent, Rule: r.Name, Pattern: pattern, Confidence: r.Confidence}
		}
	}
	return Decision{Intent: IntentUnknown, Rule: "fallback"}
}

func containsAny(terms []string) func(string) (string, bool) {
	return func(msg string) (string, bool) {
		for _, t := range terms {
			if strings.Contains(msg, t) {
				return t, true
			}
		}
		return "", false
	}
}

func collectFoodTerms(foods *catalog.FoodCatalog) []string {
	var terms []string
	for _, f := range foods.All() {
		terms = append(terms, f.Terms()...)
	}
	return terms
}

func collectMythTerms(myths *catalog.MythCatalog) []string {
	var terms []string
	for _, p := range myths.Phrases() {
		if t := strings.ToLower(strings.TrimSpace(p.Text)); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}
