package output

import (
	"context"

	"github.com/hejijunhao/triage/internal/model"
)

// Output defines the interface for classified task record destinations.
type Output interface {
	Write(ctx context.Context, rec model.Record) error
	Close() error
}
