package triage

import (
	"fmt"

	"github.com/hejijunhao/triage/internal/engine"
	"github.com/hejijunhao/triage/internal/engine/taxonomy"
	"github.com/hejijunhao/triage/internal/model"
	"github.com/hejijunhao/triage/internal/task"
)

// Validation errors returned by Prepare. Match with errors.Is.
var (
	ErrTitleRequired   = task.ErrTitleRequired
	ErrUnknownCategory = task.ErrUnknownCategory
	ErrUnknownPriority = task.ErrUnknownPriority
	ErrInvalidDueDate  = task.ErrInvalidDueDate
)

// Triage classifies and prepares tasks using the built-in keyword tables.
// Safe for concurrent use.
type Triage struct {
	engine   *engine.Engine
	preparer *task.Preparer
	taxonomy *taxonomy.Taxonomy
}

// New creates a Triage instance. It is cheap; there are no resources to
// release.
func New(opts ...Option) *Triage {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tax := taxonomy.Default()
	eng := engine.New(tax)
	prep := task.NewPreparer(eng, task.WithClock(o.clock), task.WithIDGenerator(o.newID))

	return &Triage{engine: eng, preparer: prep, taxonomy: tax}
}

// Classify classifies a title and optional description. It never fails.
func (t *Triage) Classify(title, description string) Classification {
	return classificationFromModel(t.engine.Classify(title, description))
}

// ClassifyBatch classifies each request's title and description, in order.
// Overrides and due dates are ignored.
func (t *Triage) ClassifyBatch(reqs []Request) []Classification {
	out := make([]Classification, len(reqs))
	for i, r := range reqs {
		out[i] = t.Classify(r.Title, r.Description)
	}
	return out
}

// Prepare validates the request and returns a pending task draft alongside
// the automatic classification it was derived from.
func (t *Triage) Prepare(req Request) (Prepared, error) {
	rec, err := t.preparer.Prepare(model.TaskRequest{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		return Prepared{}, fmt.Errorf("triage: %w", err)
	}
	return preparedFromModel(rec), nil
}

func classificationFromModel(c model.Classification) Classification {
	return Classification{
		Category: string(c.Category),
		Priority: string(c.Priority),
		Entities: Entities{
			People: c.Entities.People,
			Dates:  c.Entities.Dates,
		},
		SuggestedActions: c.SuggestedActions,
	}
}

func preparedFromModel(rec model.Record) Prepared {
	d := rec.Task
	return Prepared{
		Task: Task{
			ID:                d.ID.String(),
			Title:             d.Title,
			Description:       d.Description,
			AssignedTo:        d.AssignedTo,
			DueDate:           d.DueDate,
			Category:          string(d.Category),
			Priority:          string(d.Priority),
			Status:            string(d.Status),
			ExtractedEntities: Entities{People: d.ExtractedEntities.People, Dates: d.ExtractedEntities.Dates},
			SuggestedActions:  d.SuggestedActions,
			CreatedAt:         d.CreatedAt,
		},
		AutoClassification: classificationFromModel(rec.AutoClassification),
		FinalUsed: FinalUsed{
			Category: string(rec.FinalUsed.Category),
			Priority: string(rec.FinalUsed.Priority),
		},
	}
}
