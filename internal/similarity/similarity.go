// Package similarity scores how alike two pieces of text are and picks the
// best candidate from a collection.
package similarity

import (
	"sort"
	"strings"

	"github.com/aishuu11/hackathon-2025/internal/textnorm"
)

// Similarity returns a score in [0,1] between two raw strings. Both sides are
// cleaned first, then compared with TokenSortRatio, so word order and
// stopwords do not affect the result.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return TokenSortRatio(textnorm.Clean(a), textnorm.Clean(b))
}

// TokenSortRatio compares two already-cleaned strings after sorting their
// whitespace-separated tokens. Empty input on either side scores 0.
func TokenSortRatio(a, b string) float64 {
	sa, sb := sortTokens(a), sortTokens(b)
	if sa == "" || sb == "" {
		return 0
	}
	return Ratio(sa, sb)
}

// Ratio is the normalized indel similarity 2*LCS/(len(a)+len(b)) over runes.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 0
	}
	if a == b {
		return 1
	}
	return float64(2*lcsLength(ra, rb)) / float64(total)
}

func sortTokens(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// lcsLength computes the longest common subsequence with a single-row DP.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) < len(b) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
