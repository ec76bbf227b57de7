package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FoodCatalog is an ordered, read-only collection of foods. Order follows the
// source document and is the tie-break order for lookups.
type FoodCatalog struct {
	entries []FoodEntry
	byKey   map[string]int
}

// NewFoodCatalog builds a catalog from entries in the given order.
// Entries with an empty or duplicate key are skipped.
func NewFoodCatalog(entries []FoodEntry) *FoodCatalog {
	c := &FoodCatalog{byKey: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e.Key == "" {
			continue
		}
		if _, dup := c.byKey[e.Key]; dup {
			continue
		}
		c.byKey[e.Key] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c
}

// All returns a copy of the entry list in catalog order. The entries still
// share slices with the catalog; Clone one before changing it.
func (c *FoodCatalog) All() []FoodEntry {
	if c == nil {
		return nil
	}
	return append([]FoodEntry(nil), c.entries...)
}

// Len returns the number of foods.
func (c *FoodCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Get looks a food up by key.
func (c *FoodCatalog) Get(key string) (FoodEntry, bool) {
	if c == nil {
		return FoodEntry{}, false
	}
	i, ok := c.byKey[key]
	if !ok {
		return FoodEntry{}, false
	}
	return c.entries[i].Clone(), true
}

// Terms returns the lowercase phrases that identify a food inside a message:
// display name, key, key with underscores as spaces, and keywords.
func (e FoodEntry) Terms() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	add(e.DisplayName)
	add(e.Key)
	add(strings.ReplaceAll(e.Key, "_", " "))
	for _, k := range e.Keywords {
		add(k)
	}
	return out
}

// UnmarshalJSON accepts either an object keyed by food id (document order is
// kept) or an array of entries carrying their own key.
func (c *FoodCatalog) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []FoodEntry
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*c = *NewFoodCatalog(list)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object or array, got %v", tok)
	}

	var list []FoodEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var entry FoodEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("food %q: %w", key, err)
		}
		if entry.Key == "" {
			entry.Key = key
		}
		list = append(list, entry)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*c = *NewFoodCatalog(list)
	return nil
}

// MarshalJSON writes the catalog as an array in catalog order.
func (c *FoodCatalog) MarshalJSON() ([]byte, error) {
	if c == nil || c.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.entries)
}
