package store

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// instrumented reports every call of the wrapped store to the store hooks.
type instrumented struct {
	Store
	backend string
	hooks   observability.StoreHooks
}

// Instrument wraps s so that loads, saves and deletes are reported to the
// globally registered [observability.StoreHooks] under the backend name.
func Instrument(s Store, backend string) Store {
	return InstrumentWith(s, backend, nil)
}

// InstrumentWith is Instrument with explicit hooks; nil uses the global
// registry at call time.
func InstrumentWith(s Store, backend string, hooks observability.StoreHooks) Store {
	return &instrumented{Store: s, backend: backend, hooks: hooks}
}

func (s *instrumented) h() observability.StoreHooks {
	if s.hooks != nil {
		return s.hooks
	}
	return observability.Store()
}

func (s *instrumented) Load(ctx context.Context, id string) (board.Snapshot, error) {
	start := time.Now()
	snap, err := s.Store.Load(ctx, id)
	if err == nil || errors.Is(err, ErrNotFound) {
		s.h().OnLoad(ctx, s.backend, err == nil, time.Since(start))
	}
	return snap, err
}

func (s *instrumented) Save(ctx context.Context, snap board.Snapshot) error {
	start := time.Now()
	err := s.Store.Save(ctx, snap)
	s.h().OnSave(ctx, s.backend, len(snap.Boxes), time.Since(start), err)
	return err
}

func (s *instrumented) Delete(ctx context.Context, id string) error {
	err := s.Store.Delete(ctx, id)
	s.h().OnDelete(ctx, s.backend, err)
	return err
}

// Unwrap returns the wrapped store.
func (s *instrumented) Unwrap() Store { return s.Store }
