package taxonomy

import "github.com/hejijunhao/triage/internal/model"

// fallbackActions is the checklist for tasks that matched no category.
var fallbackActions = []string{"Review task"}

// DefaultCategories returns the built-in category table. Order matters:
// the first category with a matching keyword wins.
func DefaultCategories() []Rule[model.Category] {
	return []Rule[model.Category]{
		{Label: model.Scheduling, Keywords: []string{"meeting", "schedule", "call", "appointment", "deadline"}},
		{Label: model.Finance, Keywords: []string{"payment", "invoice", "bill", "budget", "cost", "expense"}},
		{Label: model.Technical, Keywords: []string{"bug", "fix", "error", "install", "repair", "maintain"}},
		{Label: model.Safety, Keywords: []string{"safety", "hazard", "inspection", "compliance", "ppe"}},
	}
}

// DefaultPriorities returns the built-in priority table, high before medium.
func DefaultPriorities() []Rule[model.Priority] {
	return []Rule[model.Priority]{
		{Label: model.High, Keywords: []string{"urgent", "asap", "immediately", "today", "critical", "emergency"}},
		{Label: model.Medium, Keywords: []string{"soon", "this week", "important"}},
	}
}

// DefaultActions returns the canned next steps for each category.
func DefaultActions() map[model.Category][]string {
	return map[model.Category][]string{
		model.Scheduling: {"Block calendar", "Send invite", "Prepare agenda", "Set reminder"},
		model.Finance:    {"Check budget", "Get approval", "Generate invoice", "Update records"},
		model.Technical:  {"Diagnose issue", "Check resources", "Assign technician", "Document fix"},
		model.Safety:     {"Conduct inspection", "File report", "Notify supervisor", "Update checklist"},
	}
}

var std = mustNew(DefaultCategories(), DefaultPriorities(), DefaultActions())

// Default returns the process-wide built-in taxonomy.
func Default() *Taxonomy {
	return std
}

func mustNew(categories []Rule[model.Category], priorities []Rule[model.Priority], actions map[model.Category][]string) *Taxonomy {
	t, err := New(categories, priorities, actions)
	if err != nil {
		panic(err)
	}
	return t
}
