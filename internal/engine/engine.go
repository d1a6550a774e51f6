package engine

import (
	"log/slog"

	"github.com/hejijunhao/triage/internal/engine/classifier"
	"github.com/hejijunhao/triage/internal/engine/extractor"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
)

// Engine runs the normalize → categorize → prioritize → extract → actions
// pipeline over task text. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	taxonomy *taxonomy.Taxonomy
}

// New creates an Engine over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Engine {
	return &Engine{taxonomy: tax}
}

// Classify derives category, priority, entities and suggested actions from
// a title and an optional description. It never fails: text that matches
// nothing yields general/low with empty entities and the fallback actions.
func (e *Engine) Classify(title, description string) model.Classification {
	text := normalize(title, description)

	category := model.General
	if m, ok := classifier.First(text, e.taxonomy.Categories()); ok {
		category = m.Label
		slog.Debug("category matched", "keyword", m.Keyword, "category", category)
	}

	priority := model.Low
	if m, ok := classifier.First(text, e.taxonomy.Priorities()); ok {
		priority = m.Label
		slog.Debug("priority matched", "keyword", m.Keyword, "priority", priority)
	}

	return model.Classification{
		Category: category,
		Priority: priority,
		Entities: model.Entities{
			People: extractor.People(text),
			Dates:  extractor.Dates(text),
		},
		SuggestedActions: e.taxonomy.Actions(category),
	}
}

// ClassifyBatch classifies each request's title and description, preserving order.
func (e *Engine) ClassifyBatch(reqs []model.TaskRequest) []model.Classification {
	out := make([]model.Classification, len(reqs))
	for i, r := range reqs {
		out[i] = e.Classify(r.Title, r.Description)
	}
	return out
}
