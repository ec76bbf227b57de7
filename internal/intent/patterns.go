package intent

import "regexp"

// PatternTable is a named list of regular expressions. A table matches when
// any of its patterns matches.
type PatternTable struct {
	Name     string
	Patterns []*regexp.Regexp
}

func table(name string, patterns ...string) PatternTable {
	t := PatternTable{Name: name, Patterns: make([]*regexp.Regexp, len(patterns))}
	for i, p := range patterns {
		t.Patterns[i] = regexp.MustCompile(p)
	}
	return t
}

// Match returns the first pattern in the table that matches text.
func (t PatternTable) Match(text string) (string, bool) {
	for _, re := range t.Patterns {
		if re.MatchString(text) {
			return re.String(), true
		}
	}
	return "", false
}

// Pattern tables, in cascade order.
var (
	OffTopicPatterns = table("off_topic",
		`\bjoke\b`, `\bfunny\b`, `\bweather\b`, `\bmovie\b`,
		`\bsong\b`, `\bgame\b`, `\bsports team\b`, `\bpolitics\b`,
	)

	GreetingPatterns = table("greeting",
		`^(hi|hello|hey|hiya|sup|yo)\b`,
		`\bhow are you\b`, `\bwhat's up\b`, `\bwhats up\b`,
	)

	ProfilePatterns = table("profile_update",
		`\bstart\b`, `\bbegin\b`, `\bget started\b`,
		`\bset.*goal\b`, `\bmy goal\b`, `\bchange.*goal\b`,
		`\bupdate.*profile\b`, `\bset.*preference\b`,
		`\bi want to\b.*\b(lose weight|gain muscle|get healthy|build muscle)\b`,
	)

	EmotionPatterns = table("emotion",
		`\bi feel (bad|guilty|terrible|awful|ashamed)\b`,
		`\bi (binged|overate|ate too much|messed up|failed)\b`,
		`\bcheat day\b`, `\bcheat meal\b`, `\bgave in\b`,
		`\bstress eat`, `\bemotional eating\b`, `\bcan't stop eating\b`,
	)

	MythQuestionPatterns = table("myth_question",
		`\bis it true\b`, `\bis this true\b`, `\btruth about\b`,
		`\bmyth\b.*\bfact\b`, `\bfact\b.*\bmyth\b`,
		`\bheard that\b`, `\bsomeone (said|told)\b`,
		`\bsocial media\b.*\b(claim|says|said)\b`,
		`\btiktok\b`, `\binstagram\b.*\b(says|said)\b`,
		`\binfluencer\b.*\b(says|said)\b`,
		`\bdoes.*really\b`, `\bdo.*really\b`, `\bcan.*really\b`,
	)

	AdvicePatterns = table("advice",
		`\bhow (can|do|should) i\b.*\b(lose weight|gain weight|eat better|get healthy)\b`,
		`\bwhat should i eat\b`, `\bhow to\b.*\b(lose|gain|build|reduce)\b`,
		`\badvice\b.*\b(weight|diet|nutrition|eating|muscle)\b`,
		`\bhelp me\b.*\b(lose|gain|eat|diet)\b`,
		`\btips for\b`, `\bways to\b.*\b(lose|gain|improve)\b`,
		`\bhow much.*should i\b`, `\bshould i eat\b`, `\bshould i avoid\b`,
		`\bbest (food|diet|way)\b`, `\bhealthy.*for\b`,
	)

	NutritionKeywordPatterns = table("nutrition_keyword",
		`\bsugar\b`, `\bprotein\b`, `\bcarb`, `\bfat\b`,
		`\bcalories\b`, `\bfiber\b`, `\bvitamin\b`, `\bwater\b`,
		`\bnutrition\b`, `\bhealthy\b`, `\bunhealthy\b`,
	)
)
