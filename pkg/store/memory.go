package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

// MemoryStore keeps encoded snapshots in a map. Values are copied on the way
// in and out, so callers never share slices with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[string][]byte
	closed bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{boards: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, id string) (board.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return board.Snapshot{}, ErrClosed
	}
	data, ok := s.boards[id]
	if !ok {
		return board.Snapshot{}, ErrNotFound
	}
	r, err := decodeRecord(data)
	if err != nil {
		return board.Snapshot{}, err
	}
	return r.Snapshot, nil
}

func (s *MemoryStore) Save(ctx context.Context, snap board.Snapshot) error {
	if err := checkID(snap.Board.ID); err != nil {
		return err
	}
	data, err := encodeRecord(newRecord(snap))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.boards[snap.Board.ID] = data
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if _, ok := s.boards[id]; !ok {
		return ErrNotFound
	}
	delete(s.boards, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	entries := make([]Entry, 0, len(s.boards))
	for _, data := range s.boards {
		r, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, r.entry())
	}
	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.ID, b.ID) })
	return entries, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var _ Store = (*MemoryStore)(nil)
