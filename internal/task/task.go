// Package task turns caller requests into classified task drafts, applying
// any explicit category or priority the caller supplied over the automatic
// values. Nothing is persisted here.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hejijunhao/triage/internal/model"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownPriority = errors.New("unknown priority")
	ErrInvalidDueDate  = errors.New("invalid due_date")
)

// Classifier is the subset of the engine the preparer needs.
type Classifier interface {
	Classify(title, description string) model.Classification
}

// Option configures a Preparer.
type Option func(*Preparer)

// WithClock sets the time source for CreatedAt. Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Preparer) { p.now = now }
}

// WithIDGenerator sets the draft ID source. Default: uuid.New.
func WithIDGenerator(f func() uuid.UUID) Option {
	return func(p *Preparer) { p.newID = f }
}

// Preparer validates requests and builds drafts. Safe for concurrent use
// when the clock and ID generator are.
type Preparer struct {
	classifier Classifier
	now        func() time.Time
	newID      func() uuid.UUID
}

// NewPreparer creates a Preparer over the given classifier.
func NewPreparer(c Classifier, opts ...Option) *Preparer {
	p := &Preparer{
		classifier: c,
		now:        time.Now,
		newID:      uuid.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prepare classifies the request and returns a pending draft along with the
// automatic classification and the values finally applied.
func (p *Preparer) Prepare(req model.TaskRequest) (model.Record, error) {
	if strings.TrimSpace(req.Title) == "" {
		return model.Record{}, ErrTitleRequired
	}

	auto := p.classifier.Classify(req.Title, req.Description)

	final := model.FinalUsed{Category: auto.Category, Priority: auto.Priority}
	if req.Category != "" {
		c, ok := model.ParseCategory(req.Category)
		if !ok {
			return model.Record{}, fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
		}
		final.Category = c
	}
	if req.Priority != "" {
		pr, ok := model.ParsePriority(req.Priority)
		if !ok {
			return model.Record{}, fmt.Errorf("%w: %q", ErrUnknownPriority, req.Priority)
		}
		final.Priority = pr
	}

	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return model.Record{}, err
	}

	draft := model.TaskDraft{
		ID:                p.newID(),
		Title:             req.Title,
		Description:       req.Description,
		AssignedTo:        req.AssignedTo,
		DueDate:           due,
		Category:          final.Category,
		Priority:          final.Priority,
		Status:            model.StatusPending,
		ExtractedEntities: cloneEntities(auto.Entities),
		SuggestedActions:  append([]string(nil), auto.SuggestedActions...),
		CreatedAt:         p.now().UTC(),
	}

	return model.Record{Task: draft, AutoClassification: auto, FinalUsed: final}, nil
}

// dueDateLayouts are tried in order.
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDueDate, s)
}

func cloneEntities(e model.Entities) model.Entities {
	return model.Entities{
		People: append([]string{}, e.People...),
		Dates:  append([]string{}, e.Dates...),
	}
}
