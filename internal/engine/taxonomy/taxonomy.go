package taxonomy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hejijunhao/triage/internal/model"
)

// Rule binds a label to its trigger keywords. Keywords are matched as
// lowercase substrings, in declared order.
type Rule[L ~string] struct {
	Label    L
	Keywords []string
}

// Taxonomy holds the ordered category and priority tables and the action
// checklist for each category. It is immutable after New.
type Taxonomy struct {
	categories []Rule[model.Category]
	priorities []Rule[model.Priority]
	actions    map[model.Category][]string
}

// New validates the tables and returns a Taxonomy that owns copies of them.
// Every category rule needs a non-empty action list, and every keyword must
// be non-empty lowercase text since matching runs against lowercased input.
func New(categories []Rule[model.Category], priorities []Rule[model.Priority], actions map[model.Category][]string) (*Taxonomy, error) {
	var errs []error
	errs = append(errs, checkRules(categories)...)
	errs = append(errs, checkRules(priorities)...)
	for _, r := range categories {
		if len(actions[r.Label]) == 0 {
			errs = append(errs, fmt.Errorf("taxonomy: category %q has no actions", r.Label))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	t := &Taxonomy{
		categories: cloneRules(categories),
		priorities: cloneRules(priorities),
		actions:    make(map[model.Category][]string, len(actions)),
	}
	for c, a := range actions {
		t.actions[c] = append([]string(nil), a...)
	}
	return t, nil
}

// Categories returns a copy of the category table in match order.
func (t *Taxonomy) Categories() []Rule[model.Category] {
	return cloneRules(t.categories)
}

// Priorities returns a copy of the priority table in match order.
func (t *Taxonomy) Priorities() []Rule[model.Priority] {
	return cloneRules(t.priorities)
}

// Actions returns the checklist for c, or fallbackActions when c has none.
// The returned slice is always a fresh copy.
func (t *Taxonomy) Actions(c model.Category) []string {
	if a, ok := t.actions[c]; ok {
		return append([]string(nil), a...)
	}
	return append([]string(nil), fallbackActions...)
}

func checkRules[L ~string](rules []Rule[L]) []error {
	var errs []error
	seen := make(map[L]bool, len(rules))
	for _, r := range rules {
		if r.Label == "" {
			errs = append(errs, errors.New("taxonomy: rule with empty label"))
			continue
		}
		if seen[r.Label] {
			errs = append(errs, fmt.Errorf("taxonomy: duplicate label %q", r.Label))
		}
		seen[r.Label] = true
		if len(r.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("taxonomy: label %q has no keywords", r.Label))
		}
		for _, kw := range r.Keywords {
			if kw == "" || kw != strings.ToLower(kw) {
				errs = append(errs, fmt.Errorf("taxonomy: label %q: keyword %q must be non-empty lowercase", r.Label, kw))
			}
		}
	}
	return errs
}

func cloneRules[L ~string](rules []Rule[L]) []Rule[L] {
	out := make([]Rule[L], len(rules))
	for i, r := range rules {
		out[i] = Rule[L]{Label: r.Label, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}
