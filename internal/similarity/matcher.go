package similarity

import "github.com/aishuu11/hackathon-2025/internal/textnorm"

// Result is the outcome of BestMatch. Score is always the best score seen
// over the full candidate set, even when no candidate was accepted.
type Result[T any] struct {
	Candidate T
	Index     int
	Score     float64
	Found     bool
}

// BestMatch scores every candidate against query and returns the highest
// scoring one if it reaches threshold. On exact ties the earliest candidate
// wins. key extracts the comparable text from a candidate.
func BestMatch[T any](query string, candidates []T, key func(T) string, threshold float64) Result[T] {
	res := Result[T]{Index: -1}
	if query == "" || len(candidates) == 0 {
		return res
	}

	q := textnorm.Clean(query)
	best := -1
	for i, c := range candidates {
		text := key(c)
		if text == "" {
			continue
		}
		score := TokenSortRatio(q, textnorm.Clean(text))
		if best < 0 || score > res.Score {
			best = i
			res.Score = score
		}
	}

	if best >= 0 && res.Score > 0 && res.Score >= threshold {
		res.Candidate = candidates[best]
		res.Index = best
		res.Found = true
	}
	return res
}

// Scored pairs a candidate with its score against a query.
type Scored[T any] struct {
	Candidate T
	Score     float64
}

// ScoreAll scores every candidate against query, preserving input order.
func ScoreAll[T any](query string, candidates []T, key func(T) string) []Scored[T] {
	q := textnorm.Clean(query)
	out := make([]Scored[T], 0, len(candidates))
	for _, c := range candidates {
		var score float64
		if query != "" {
			score = TokenSortRatio(q, textnorm.Clean(key(c)))
		}
		out = append(out, Scored[T]{Candidate: c, Score: score})
	}
	return out
}
