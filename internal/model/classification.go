package model

// Category is the task domain used to route suggested actions.
type Category string

const (
	Scheduling Category = "scheduling"
	Finance    Category = "finance"
	Technical  Category = "technical"
	Safety     Category = "safety"
	General    Category = "general" // nothing matched
)

// Priority is the urgency tier inferred from the task text.
type Priority string

const (
	High   Priority = "high"
	Medium Priority = "medium"
	Low    Priority = "low" // nothing matched
)

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(s); c {
	case Scheduling, Finance, Technical, Safety, General:
		return c, true
	}
	return "", false
}

// ParsePriority reports whether s names a known priority.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(s); p {
	case High, Medium, Low:
		return p, true
	}
	return "", false
}

// Entities holds the raw substrings pulled out of the task text.
type Entities struct {
	People []string `json:"people"`
	Dates  []string `json:"dates"`
}

// Classification is the engine's output for one title/description pair.
type Classification struct {
	Category         Category `json:"category"`
	Priority         Priority `json:"priority"`
	Entities         Entities `json:"extracted_entities"`
	SuggestedActions []string `json:"suggested_actions"`
}
