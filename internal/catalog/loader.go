package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInvalidCatalog is returned when a catalog document exists but cannot be parsed.
var ErrInvalidCatalog = errors.New("invalid catalog document")

// Files names the four catalog documents inside a data directory.
type Files struct {
	Foods     string
	Myths     string
	Messages  string
	Questions string
}

// DefaultFiles are the document names used by the bundled data directory.
var DefaultFiles = Files{
	Foods:     "foods.json",
	Myths:     "myths.json",
	Messages:  "supportive_messages.json",
	Questions: "personalization_questions.json",
}

// Set bundles every catalog the engine reads. A zero Set behaves as empty
// catalogs everywhere.
type Set struct {
	Foods     *FoodCatalog
	Myths     *MythCatalog
	Messages  MessageBank
	Questions *QuestionSet
}

// Empty returns a Set with no data.
func Empty() *Set {
	return &Set{
		Foods:     NewFoodCatalog(nil),
		Myths:     NewMythCatalog(nil),
		Messages:  MessageBank{},
		Questions: &QuestionSet{},
	}
}

// LoadSet loads all four documents from dir. Missing documents load as empty.
// Corrupt documents also load as empty, and their errors are joined into the
// returned error so the caller can log them and carry on.
func LoadSet(dir string, files Files) (*Set, error) {
	set := Empty()
	var errs []error

	foods, err := LoadFoods(filepath.Join(dir, files.Foods))
	set.Foods = foods
	errs = append(errs, err)

	myths, err := LoadMyths(filepath.Join(dir, files.Myths))
	set.Myths = myths
	errs = append(errs, err)

	msgs, err := LoadMessages(filepath.Join(dir, files.Messages))
	set.Messages = msgs
	errs = append(errs, err)

	qs, err := LoadQuestions(filepath.Join(dir, files.Questions))
	set.Questions = qs
	errs = append(errs, err)

	return set, errors.Join(errs...)
}

// LoadFoods reads a food catalog document.
func LoadFoods(path string) (*FoodCatalog, error) {
	c := NewFoodCatalog(nil)
	if err := loadJSON(path, c); err != nil {
		return NewFoodCatalog(nil), err
	}
	return c, nil
}

// LoadMyths reads a myth catalog document: a JSON array of myths.
func LoadMyths(path string) (*MythCatalog, error) {
	var list []MythEntry
	if err := loadJSON(path, &list); err != nil {
		return NewMythCatalog(nil), err
	}
	return NewMythCatalog(list), nil
}

// LoadMessages reads a supportive message bank.
func LoadMessages(path string) (MessageBank, error) {
	bank := MessageBank{}
	if err := loadJSON(path, &bank); err != nil {
		return MessageBank{}, err
	}
	if bank == nil {
		bank = MessageBank{}
	}
	return bank, nil
}

// LoadQuestions reads the onboarding questionnaire.
func LoadQuestions(path string) (*QuestionSet, error) {
	qs := &QuestionSet{}
	if err := loadJSON(path, qs); err != nil {
		return &QuestionSet{}, err
	}
	return qs, nil
}

// loadJSON decodes path into v. A missing file is not an error and leaves v untouched.
func loadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, filepath.Base(path), err)
	}
	return nil
}
