package triage

import (
	"time"

	"github.com/google/uuid"
)

type options struct {
	clock func() time.Time
	newID func() uuid.UUID
}

// Option configures a Triage instance.
type Option func(*options)

// WithClock sets the time source for Task.CreatedAt. Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithIDGenerator sets the source of Task.ID. Default: random UUIDv4.
func WithIDGenerator(f func() uuid.UUID) Option {
	return func(o *options) {
		o.newID = f
	}
}

func defaultOptions() options {
	return options{
		clock: time.Now,
		newID: uuid.New,
	}
}
