package triage

import "github.com/hejijunhao/triage/internal/model"

// Rule is one row of a keyword table. The first rule with a keyword found
// in the lowercased text wins.
type Rule struct {
	Label    string   // e.g. "finance"
	Keywords []string // lowercase substrings, in match order
	Actions  []string // suggested actions; set for categories only
}

// Taxonomy is a read-only view of the keyword tables.
type Taxonomy struct {
	Categories      []Rule
	Priorities      []Rule
	FallbackActions []string // actions for the "general" category
}

// Taxonomy returns a copy of the tables in match order. Modifying the result
// does not affect classification.
func (t *Triage) Taxonomy() Taxonomy {
	var out Taxonomy
	for _, r := range t.taxonomy.Categories() {
		out.Categories = append(out.Categories, Rule{
			Label:    string(r.Label),
			Keywords: r.Keywords,
			Actions:  t.taxonomy.Actions(r.Label),
		})
	}
	for _, r := range t.taxonomy.Priorities() {
		out.Priorities = append(out.Priorities, Rule{Label: string(r.Label), Keywords: r.Keywords})
	}
	out.FallbackActions = t.taxonomy.Actions(model.General)
	return out
}
