package catalog

import (
	"sort"
	"strings"
)

// baseVocabulary is the nutrition word list spell correction snaps to.
var baseVocabulary = []string{
	"protein", "carbs", "carbohydrates", "fat", "fats", "calories", "diet",
	"weight", "muscle", "loss", "gain", "healthy", "nutrition", "food",
	"vegan", "vegetarian", "keto", "ketogenic", "diabetes", "diabetic",
	"pregnant", "pregnancy", "vitamins", "minerals", "fiber", "sugar",
	"sodium", "cholesterol", "gluten", "dairy", "lactose", "organic",
	"processed", "whole", "grain", "fruit", "vegetable", "meat", "chicken",
	"fish", "eggs", "milk", "cheese", "bread", "rice", "pasta", "beans",
	"nuts", "seeds", "oil", "butter", "water", "juice", "coffee", "tea",
	"breakfast", "lunch", "dinner", "snack", "meal", "eating", "drink",
	"good", "bad", "better", "worse", "best", "worst", "should", "could",
	"myth", "fact", "true", "false", "really", "actually", "always", "never",
}

// Vocabulary returns the base nutrition words plus every word that appears in
// food names, food keywords and myth phrases, sorted and deduplicated.
func (s *Set) Vocabulary() []string {
	seen := make(map[string]bool, len(baseVocabulary))
	add := func(text string) {
		for _, w := range strings.Fields(strings.ToLower(text)) {
			w = strings.Trim(w, ".,!?'\"()")
			if w != "" {
				seen[w] = true
			}
		}
	}
	for _, w := range baseVocabulary {
		seen[w] = true
	}
	if s != nil {
		for _, f := range s.Foods.All() {
			add(f.DisplayName)
			for _, k := range f.Keywords {
				add(k)
			}
		}
		for _, m := range s.Myths.All() {
			for _, p := range m.Phrases() {
				add(p)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
