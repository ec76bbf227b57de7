package dialogue

import (
	"strings"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
	"github.com/aishuu11/hackathon-2025/internal/intent"
	"github.com/aishuu11/hackathon-2025/internal/similarity"
)

// MatchConfig holds the similarity thresholds used by the matchers.
type MatchConfig struct {
	FoodThreshold float64
	MythThreshold float64
	// ContainmentFloor is the minimum score for a myth phrase found verbatim
	// in the message when ContainmentOverride is on.
	ContainmentFloor    float64
	ContainmentOverride bool
}

// DefaultMatchConfig returns the standard thresholds.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		FoodThreshold:       0.6,
		MythThreshold:       0.5,
		ContainmentFloor:    0.3,
		ContainmentOverride: true,
	}
}

// FoodMatch is the result of a food lookup.
type FoodMatch struct {
	Food  catalog.FoodEntry
	Term  string
	Score float64
	Found bool
}

// MatchFood finds the food a message is about. Every food with a name, key or
// keyword contained in the message competes; the highest similarity between
// message and contained term wins, then the longest term, then catalog order.
// Without any containment it falls back to fuzzy matching on display names.
func MatchFood(foods *catalog.FoodCatalog, message string, threshold float64) FoodMatch {
	msg := strings.ReplaceAll(strings.ToLower(message), "_", " ")
	raw := strings.ToLower(message)

	var best FoodMatch
	for _, f := range foods.All() {
		for _, term := range f.Terms() {
			if !strings.Contains(msg, term) && !strings.Contains(raw, term) {
				continue
			}
			score := similarity.Similarity(msg, strings.ReplaceAll(term, "_", " "))
			if !best.Found || score > best.Score || (score == best.Score && len(term) > len(best.Term)) {
				best = FoodMatch{Food: f, Term: term, Score: score, Found: true}
			}
		}
	}
	if best.Found {
		return best
	}

	res := similarity.BestMatch(msg, foods.All(), func(f catalog.FoodEntry) string { return f.DisplayName }, threshold)
	return FoodMatch{Food: res.Candidate, Term: strings.ToLower(res.Candidate.DisplayName), Score: res.Score, Found: res.Found}
}

// MythMatch is the result of a myth lookup.
type MythMatch struct {
	Myth   catalog.MythEntry
	Phrase string
	Claim  string
	Score  float64
	Found  bool
	// Path is "claim", "message" or "containment".
	Path string
}

// MatchMyth finds the myth a message is about. The extracted claim is tried
// first, then the whole message, both against every label and alternate phrase
// at the myth threshold. Finally, if enabled, a phrase contained verbatim in
// the message is accepted when it scores above the containment floor.
func MatchMyth(myths *catalog.MythCatalog, message string, cfg MatchConfig) MythMatch {
	phrases := myths.Phrases()
	text := func(p catalog.MythPhrase) string { return p.Text }
	msg := strings.ToLower(strings.TrimSpace(message))

	var best MythMatch
	claim, hasClaim := intent.ExtractClaim(msg)
	if hasClaim {
		res := similarity.BestMatch(claim, phrases, text, cfg.MythThreshold)
		best.Score = res.Score
		if res.Found {
			return mythResult(myths, res.Candidate, claim, res.Score, "claim")
		}
	}

	res := similarity.BestMatch(msg, phrases, text, cfg.MythThreshold)
	if res.Found {
		return mythResult(myths, res.Candidate, claim, res.Score, "message")
	}
	if res.Score > best.Score {
		best.Score = res.Score
	}

	if cfg.ContainmentOverride {
		var hit *catalog.MythPhrase
		var hitScore float64
		for i, p := range phrases {
			if !strings.Contains(msg, strings.ToLower(p.Text)) {
				continue
			}
			score := similarity.Similarity(msg, p.Text)
			if score > cfg.ContainmentFloor && (hit == nil || score > hitScore) {
				hit, hitScore = &phrases[i], score
			}
		}
		if hit != nil {
			return mythResult(myths, *hit, claim, hitScore, "containment")
		}
	}

	best.Claim = claim
	return best
}

func mythResult(myths *catalog.MythCatalog, p catalog.MythPhrase, claim string, score float64, path string) MythMatch {
	return MythMatch{
		Myth:   myths.At(p.MythIdx),
		Phrase: p.Text,
		Claim:  claim,
		Score:  score,
		Found:  true,
		Path:   path,
	}
}
