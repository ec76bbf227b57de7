package catalog

// Fallback lines used when a message bank has nothing for a key.
const (
	DefaultSupportiveMessage = "Let's take a closer look!"
	DefaultEmotionMessage    = "You're doing great. Progress, not perfection."
)

// MessageBank maps a mood or situation key to candidate supportive lines.
type MessageBank map[string][]string

// Messages returns the lines for key, or nil.
func (b MessageBank) Messages(key string) []string {
	if b == nil {
		return nil
	}
	return b[key]
}
