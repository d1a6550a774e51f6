package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hejijunhao/triage/internal/model"
	"github.com/hejijunhao/triage/internal/output"
	"github.com/hejijunhao/triage/internal/source"
)

// Preparer turns a request into a classified record.
type Preparer interface {
	Prepare(req model.TaskRequest) (model.Record, error)
}

// Stats summarises a completed run.
type Stats struct {
	Processed int // records written to the output
	Rejected  int // requests that failed validation
}

// Pipeline connects a source, a preparer, and an output.
type Pipeline struct {
	source   source.Source
	preparer Preparer
	output   output.Output
}

// New creates a Pipeline from the given components.
func New(src source.Source, prep Preparer, out output.Output) *Pipeline {
	return &Pipeline{
		source:   src,
		preparer: prep,
		output:   out,
	}
}

// Run drains the source in order. A request that fails validation is logged
// and skipped; an output error stops the run. Blocks until the source is
// exhausted or ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	ch, err := p.source.Stream(ctx)
	if err != nil {
		return stats, fmt.Errorf("pipeline stream: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case req, ok := <-ch:
			if !ok {
				if err := p.source.Err(); err != nil {
					return stats, fmt.Errorf("pipeline source: %w", err)
				}
				return stats, nil
			}
			rec, err := p.preparer.Prepare(req)
			if err != nil {
				stats.Rejected++
				slog.Warn("skipping task request", "title", req.Title, "error", err, "rejected", stats.Rejected)
				continue
			}
			if err := p.output.Write(ctx, rec); err != nil {
				return stats, fmt.Errorf("pipeline output: %w", err)
			}
			stats.Processed++
		}
	}
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
