package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// TaskRequest is the caller-supplied input for a new task. Category and
// Priority are optional overrides of the automatic classification.
type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// TaskDraft is a classified task ready to be handed to a persistence layer.
type TaskDraft struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	AssignedTo        string     `json:"assigned_to,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Category          Category   `json:"category"`
	Priority          Priority   `json:"priority"`
	Status            Status     `json:"status"`
	ExtractedEntities Entities   `json:"extracted_entities"`
	SuggestedActions  []string   `json:"suggested_actions"`
	CreatedAt         time.Time  `json:"created_at"`
}

// FinalUsed records which category and priority were applied after overrides.
type FinalUsed struct {
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
}

// Record is the unit that flows through outputs: the draft plus the
// untouched automatic classification it was derived from.
type Record struct {
	Task               TaskDraft      `json:"task"`
	AutoClassification Classification `json:"auto_classification"`
	FinalUsed          FinalUsed      `json:"final_used"`
}
