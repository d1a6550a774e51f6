package classifier

import (
	"testing"

	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
)

func TestFirst(t *testing.T) {
	rules := taxonomy.DefaultCategories()

	tests := []struct {
		text        string
		wantLabel   model.Category
		wantKeyword string
		wantOK      bool
	}{
		{"urgent team meeting today about budget", model.Scheduling, "meeting", true},
		{"pay the budget before the meeting", model.Scheduling, "meeting", true},
		{"process invoice payment", model.Finance, "payment", true},
		{"fix login bug", model.Technical, "bug", true},
		{"hazard on floor 2", model.Safety, "hazard", true},
		{"recall the order", model.Scheduling, "call", true},
		{"water the plants", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		got, ok := First(tt.text, rules)
		if ok != tt.wantOK {
			t.Errorf("First(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if got.Label != tt.wantLabel || got.Keyword != tt.wantKeyword {
			t.Errorf("First(%q) = %s/%q, want %s/%q", tt.text, got.Label, got.Keyword, tt.wantLabel, tt.wantKeyword)
		}
	}
}

func TestFirstKeywordOrderWithinRule(t *testing.T) {
	// "bug" is declared before "fix", so it wins even though "fix" comes first in the text.
	got, ok := First("fix login bug", taxonomy.DefaultCategories())
	if !ok || got.Keyword != "bug" {
		t.Fatalf("expected keyword bug, got %q (ok=%v)", got.Keyword, ok)
	}
}

func TestFirstPriorities(t *testing.T) {
	rules := taxonomy.DefaultPriorities()

	got, ok := First("important but also critical", rules)
	if !ok || got.Label != model.High || got.Keyword != "critical" {
		t.Errorf("expected high/critical, got %s/%q", got.Label, got.Keyword)
	}

	got, ok = First("finish this week", rules)
	if !ok || got.Label != model.Medium {
		t.Errorf("expected medium, got %s", got.Label)
	}
}

func TestFirstEmptyRules(t *testing.T) {
	if _, ok := First[model.Category]("meeting", nil); ok {
		t.Error("expected no match with empty rules")
	}
}
