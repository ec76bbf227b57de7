package catalog

import (
	"github.com/sahilm/fuzzy"
)

// Suggestion is a fuzzy "did you mean" hit from a catalog.
type Suggestion struct {
	Kind  string `json:"kind"` // food or myth
	Key   string `json:"key"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type foodNames []FoodEntry

func (f foodNames) String(i int) string { return f[i].DisplayName }
func (f foodNames) Len() int            { return len(f) }

type mythLabels []MythEntry

func (m mythLabels) String(i int) string { return m[i].Label }
func (m mythLabels) Len() int            { return len(m) }

// SuggestFoods ranks foods whose display name fuzzily contains pattern.
func (s *Set) SuggestFoods(pattern string, limit int) []Suggestion {
	if s == nil || s.Foods.Len() == 0 || pattern == "" {
		return nil
	}
	foods := s.Foods.All()
	matches := fuzzy.FindFrom(pattern, foodNames(foods))
	out := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		out = append(out, Suggestion{Kind: "food", Key: foods[m.Index].Key, Text: m.Str, Score: m.Score})
	}
	return truncate(out, limit)
}

// SuggestMyths ranks myths whose label fuzzily contains pattern.
func (s *Set) SuggestMyths(pattern string, limit int) []Suggestion {
	if s == nil || s.Myths.Len() == 0 || pattern == "" {
		return nil
	}
	myths := s.Myths.All()
	matches := fuzzy.FindFrom(pattern, mythLabels(myths))
	out := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		key := myths[m.Index].ID
		if key == "" {
			key = m.Str
		}
		out = append(out, Suggestion{Kind: "myth", Key: key, Text: m.Str, Score: m.Score})
	}
	return truncate(out, limit)
}

// Suggest merges food and myth suggestions, foods first.
func (s *Set) Suggest(pattern string, limit int) []Suggestion {
	out := append(s.SuggestFoods(pattern, limit), s.SuggestMyths(pattern, limit)...)
	return truncate(out, limit)
}

func truncate(s []Suggestion, limit int) []Suggestion {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
