package dialogue

import "math/rand"

// RandSource picks indexes for randomized copy. Implementations used by a
// shared Engine must be safe for concurrent use.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.Intn(n) }

// FixedRand always picks the same index, clamped to the range.
type FixedRand int

// IntN implements RandSource.
func (f FixedRand) IntN(n int) int {
	i := int(f)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func pick(r RandSource, options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	default:
		return options[r.IntN(len(options))]
	}
}
