package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled task text for classification validation.
type CorpusEntry struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ExpectedCategory string   `json:"expected_category"`
	ExpectedPriority string   `json:"expected_priority"`
	ExpectedPeople   []string `json:"expected_people"`
	ExpectedDates    []string `json:"expected_dates"`
	Note             string   `json:"note"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
