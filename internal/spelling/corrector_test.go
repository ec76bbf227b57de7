package spelling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCorrector() *Corrector {
	return NewCorrector([]string{"protein", "sugar", "calories", "vegetarian", "bubble", "tea"}, 0.7, 4)
}

func TestCorrect(t *testing.T) {
	c := newTestCorrector()

	tests := []struct {
		name  string
		input string
		want  string
		fixes int
	}{
		{"single typo", "protien", "protein", 1},
		{"two typos", "how many calroies in sugr", "how many calories in sugar", 2},
		{"punctuation stripped", "protien?", "protein", 1},
		{"short words untouched", "tea teh", "tea teh", 0},
		{"known words untouched", "Protein sugar", "Protein sugar", 0},
		{"too far", "xylophone", "xylophone", 0},
		{"empty", "", "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, fixes := c.Correct(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Len(t, fixes, tc.fixes)
		})
	}
}

func TestCorrect_RecordsReplacement(t *testing.T) {
	_, fixes := newTestCorrector().Correct("vegitarian options")
	if assert.Len(t, fixes, 1) {
		assert.Equal(t, Correction{From: "vegitarian", To: "vegetarian"}, fixes[0])
	}
}
