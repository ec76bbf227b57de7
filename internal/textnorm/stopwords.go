package textnorm

import "github.com/kljensen/snowball/english"

// fillerWords are chat fillers dropped on top of the English stopword list.
var fillerWords = map[string]bool{
	"uh":     true,
	"um":     true,
	"pls":    true,
	"please": true,
	"lol":    true,
	"haha":   true,
}

// IsStopWord reports whether a lowercase token carries no content for matching.
func IsStopWord(word string) bool {
	return fillerWords[word] || english.IsStopWord(word)
}
