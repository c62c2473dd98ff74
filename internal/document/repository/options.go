package repository

import (
	"time"

	"github.com/gogotex/docstore/internal/idgen"
)

// Option configures a repository.
type Option func(*settings)

type settings struct {
	ids idgen.Generator
	now func() time.Time
}

// WithIDGenerator sets the source for ids assigned to documents saved without one.
func WithIDGenerator(g idgen.Generator) Option {
	return func(s *settings) { s.ids = g }
}

// WithClock sets the time source used to stamp newly created documents.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

func newSettings(opts []Option) settings {
	s := settings{ids: idgen.UUID(), now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
