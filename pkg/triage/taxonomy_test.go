package triage

import "testing"

func TestTaxonomyIntrospection(t *testing.T) {
	tax := New().Taxonomy()

	wantCategories := []string{"scheduling", "finance", "technical", "safety"}
	if len(tax.Categories) != len(wantCategories) {
		t.Fatalf("got %d categories, want %d", len(tax.Categories), len(wantCategories))
	}
	for i, want := range wantCategories {
		c := tax.Categories[i]
		if c.Label != want {
			t.Errorf("category[%d] = %q, want %q", i, c.Label, want)
		}
		if len(c.Actions) != 4 {
			t.Errorf("%s: %d actions, want 4", c.Label, len(c.Actions))
		}
	}

	if len(tax.Priorities) != 2 || tax.Priorities[0].Label != "high" || tax.Priorities[1].Label != "medium" {
		t.Errorf("priorities = %+v", tax.Priorities)
	}
	for _, p := range tax.Priorities {
		if p.Actions != nil {
			t.Errorf("priority %q should carry no actions", p.Label)
		}
	}
	if len(tax.FallbackActions) != 1 || tax.FallbackActions[0] != "Review task" {
		t.Errorf("FallbackActions = %v", tax.FallbackActions)
	}
}

func TestTaxonomyIsReadOnly(t *testing.T) {
	tr := New()
	tax := tr.Taxonomy()
	tax.Categories[0].Keywords[0] = "lunch"
	tax.FallbackActions[0] = "Ignore"

	if c := tr.Classify("lunch", ""); c.Category != "general" {
		t.Errorf("mutating the view changed classification: %s", c.Category)
	}
	if got := tr.Taxonomy().FallbackActions[0]; got != "Review task" {
		t.Errorf("FallbackActions[0] = %q after mutation", got)
	}
}
