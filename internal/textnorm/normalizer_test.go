package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Pipeline(t *testing.T) {
	got := Normalize("  Is it TRUE that   carbs make you fat?? ")

	assert.Equal(t, "  Is it TRUE that   carbs make you fat?? ", got.Raw)
	assert.Equal(t, "is it true that carbs make you fat??", got.Normalized)
	assert.Equal(t, []string{"is", "it", "true", "that", "carbs", "make", "you", "fat", "?", "?"}, got.Tokens)
	assert.Equal(t, []string{"true", "carb", "make", "fat"}, got.CleanTokens)
	assert.Equal(t, "true carb make fat", got.Clean)
}

func TestNormalize_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		got := Normalize(in)
		assert.Empty(t, got.Normalized)
		assert.Empty(t, got.Tokens)
		assert.Empty(t, got.CleanTokens)
		assert.Empty(t, got.Clean)
	}
}

func TestNormalize_DropsFillersAndNonAlpha(t *testing.T) {
	got := Normalize("uh pls lol 100g protein haha")
	assert.Equal(t, []string{"protein"}, got.CleanTokens)
}

func TestNormalize_FoldsAccents(t *testing.T) {
	got := Normalize("Café latte")
	if assert.Len(t, got.CleanTokens, 2) {
		assert.Equal(t, "cafe", got.CleanTokens[0])
	}
}

func TestNormalizeValue_Coerces(t *testing.T) {
	assert.Equal(t, "", NormalizeValue(nil).Normalized)
	assert.Equal(t, "42", NormalizeValue(42).Normalized)
	assert.Empty(t, NormalizeValue(42).CleanTokens)
	assert.Equal(t, "bubble tea", NormalizeValue("Bubble  Tea").Normalized)
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeSpace("  A \n\tB   c "))
}

func TestBaseForm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"carbs", "carb"},
		{"eating", "eat"},
		{"ate", "eat"},
		{"teas", "tea"},
		{"drinks", "drink"},
		{"women", "woman"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, BaseForm(tc.in))
		})
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "is", "you", "that", "um", "please"} {
		assert.True(t, IsStopWord(w), w)
	}
	for _, w := range []string{"sugar", "protein", "detox"} {
		assert.False(t, IsStopWord(w), w)
	}
}
