// Package spelling fixes typos against a nutrition vocabulary.
package spelling

import (
	"regexp"
	"strings"

	"github.com/aishuu11/hackathon-2025/internal/similarity"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Correction records one replaced word.
type Correction struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Corrector snaps words to the closest vocabulary entry.
type Corrector struct {
	vocab  []string
	known  map[string]bool
	cutoff float64
	minLen int
}

// NewCorrector builds a corrector. Words shorter than minLen are never touched;
// a replacement must score at least cutoff.
func NewCorrector(vocab []string, cutoff float64, minLen int) *Corrector {
	c := &Corrector{
		vocab:  make([]string, 0, len(vocab)),
		known:  make(map[string]bool, len(vocab)),
		cutoff: cutoff,
		minLen: minLen,
	}
	for _, w := range vocab {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || c.known[w] {
			continue
		}
		c.known[w] = true
		c.vocab = append(c.vocab, w)
	}
	return c
}

// Correct returns text with misspelled words replaced, and the list of
// replacements made. Text without corrections is returned unchanged.
func (c *Corrector) Correct(text string) (string, []Correction) {
	words := strings.Fields(text)
	var corrections []Correction

	for i, word := range words {
		if len([]rune(word)) < c.minLen {
			continue
		}
		clean := strings.ToLower(nonWordRe.ReplaceAllString(word, ""))
		if clean == "" || c.known[clean] {
			continue
		}
		if match, ok := c.closest(clean); ok && match != clean {
			words[i] = match
			corrections = append(corrections, Correction{From: word, To: match})
		}
	}

	if len(corrections) == 0 {
		return text, nil
	}
	return strings.Join(words, " "), corrections
}

// closest returns the best scoring vocabulary word at or above the cutoff.
// Earlier vocabulary entries win ties.
func (c *Corrector) closest(word string) (string, bool) {
	best, bestScore := "", 0.0
	for _, v := range c.vocab {
		score := similarity.Ratio(word, v)
		if score > bestScore {
			best, bestScore = v, score
		}
	}
	if best == "" || bestScore < c.cutoff {
		return "", false
	}
	return best, true
}
