package triage

import "time"

// Classification is the automatic result for one title/description pair.
// This is the stable public type; internal representations may change
// without breaking consumers.
type Classification struct {
	Category         string   `json:"category"` // scheduling, finance, technical, safety, general
	Priority         string   `json:"priority"` // high, medium, low
	Entities         Entities `json:"extracted_entities"`
	SuggestedActions []string `json:"suggested_actions"`
}

// Entities holds people and date mentions found in the text, in order of
// appearance. Both slices are non-nil.
type Entities struct {
	People []string `json:"people"`
	Dates  []string `json:"dates"`
}

// Request describes a task to prepare. Category and Priority, when set,
// override the automatic values and must name a known label. DueDate is
// RFC 3339 or YYYY-MM-DD.
type Request struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// Task is a pending task draft ready to be stored.
type Task struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	AssignedTo        string     `json:"assigned_to,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	ExtractedEntities Entities   `json:"extracted_entities"`
	SuggestedActions  []string   `json:"suggested_actions"`
	CreatedAt         time.Time  `json:"created_at"`
}

// Prepared is the result of Prepare.
type Prepared struct {
	Task               Task           `json:"task"`
	AutoClassification Classification `json:"auto_classification"`
	FinalUsed          FinalUsed      `json:"final_used"`
}

// FinalUsed is the category and priority applied after overrides.
type FinalUsed struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
}
