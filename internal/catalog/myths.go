package catalog

// MythCatalog is an ordered, read-only collection of myths.
type MythCatalog struct {
	entries []MythEntry
}

// NewMythCatalog builds a catalog from entries in the given order.
// Entries without a label are skipped.
func NewMythCatalog(entries []MythEntry) *MythCatalog {
	c := &MythCatalog{entries: make([]MythEntry, 0, len(entries))}
	for _, e := range entries {
		if e.Label == "" {
			continue
		}
		c.entries = append(c.entries, e)
	}
	return c
}

// All returns a copy of the myth list in catalog order. The entries still
// share slices with the catalog; Clone one before changing it.
func (c *MythCatalog) All() []MythEntry {
	if c == nil {
		return nil
	}
	return append([]MythEntry(nil), c.entries...)
}

// Len returns the number of myths.
func (c *MythCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// MythPhrase ties one matchable phrase to its myth.
type MythPhrase struct {
	Text    string
	MythIdx int
	IsLabel bool
}

// Phrases flattens every label and alternate phrase, in catalog order.
func (c *MythCatalog) Phrases() []MythPhrase {
	var out []MythPhrase
	for i, m := range c.All() {
		for j, p := range m.Phrases() {
			if p == "" {
				continue
			}
			out = append(out, MythPhrase{Text: p, MythIdx: i, IsLabel: j == 0})
		}
	}
	return out
}

// At returns myth i.
func (c *MythCatalog) At(i int) MythEntry {
	return c.entries[i].Clone()
}
