// Package textnorm turns raw chat text into the normalized and cleaned forms
// used by intent rules and similarity scoring.
package textnorm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// words (with inner apostrophes split off like a treebank tokenizer) or single punctuation marks
	tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+|'[\p{L}]+|[^\s\p{L}\p{N}]`)
	alphaRe = regexp.MustCompile(`^[a-z]+$`)
)

// Text is the result of normalizing one message.
type Text struct {
	Raw         string   `json:"raw"`
	Normalized  string   `json:"normalized"`
	Tokens      []string `json:"tokens"`
	CleanTokens []string `json:"clean_tokens"`
	Clean       string   `json:"clean_string"`
}

// Normalize runs the full pipeline: trim, lowercase, collapse whitespace,
// tokenize, keep alphabetic non-stopword tokens and reduce them to a base form.
// It never fails; empty input yields empty outputs.
func Normalize(raw string) Text {
	normalized := NormalizeSpace(raw)
	tokens := Tokenize(normalized)
	clean := CleanTokens(tokens)

	return Text{
		Raw:         raw,
		Normalized:  normalized,
		Tokens:      tokens,
		CleanTokens: clean,
		Clean:       strings.Join(clean, " "),
	}
}

// NormalizeValue coerces any value to its string form before normalizing.
func NormalizeValue(v interface{}) Text {
	switch s := v.(type) {
	case nil:
		return Normalize("")
	case string:
		return Normalize(s)
	case fmt.Stringer:
		return Normalize(s.String())
	default:
		return Normalize(fmt.Sprint(v))
	}
}

// NormalizeSpace trims, lowercases and collapses whitespace runs.
func NormalizeSpace(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return whitespaceRe.ReplaceAllString(text, " ")
}

// Tokenize splits normalized text into word and punctuation tokens.
func Tokenize(text string) []string {
	tokens := tokenRe.FindAllString(text, -1)
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// CleanTokens drops non-alphabetic tokens and stopwords and reduces the rest
// to their base form.
func CleanTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = foldAccents(tok)
		if !alphaRe.MatchString(tok) {
			continue
		}
		if IsStopWord(tok) {
			continue
		}
		out = append(out, BaseForm(tok))
	}
	return out
}

// Clean is shorthand for Normalize(text).Clean.
func Clean(text string) string {
	return Normalize(text).Clean
}

// irregular maps inflections a suffix stemmer cannot reduce.
var irregular = map[string]string{
	"ate":      "eat",
	"eaten":    "eat",
	"drank":    "drink",
	"drunk":    "drink",
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"feet":     "foot",
	"teeth":    "tooth",
	"mice":     "mouse",
	"better":   "good",
	"best":     "good",
	"worse":    "bad",
	"worst":    "bad",
	"gave":     "give",
	"given":    "give",
	"made":     "make",
	"lost":     "lose",
}

// BaseForm reduces a lowercase word to its dictionary-like base form.
func BaseForm(word string) string {
	if base, ok := irregular[word]; ok {
		word = base
	}
	stem, err := snowball.Stem(word, "english", false)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

func foldAccents(s string) string {
	if isASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
