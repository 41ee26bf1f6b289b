package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/matzehuels/gridboard/pkg/core/board"
	gerrors "github.com/matzehuels/gridboard/pkg/errors"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a board id has no stored snapshot.
	ErrNotFound = errors.New("board not found")

	// ErrClosed is returned by a store used after Close.
	ErrClosed = errors.New("store closed")
)

// Store persists board snapshots keyed by board id.
type Store interface {
	// Load returns the snapshot saved under id, or ErrNotFound.
	Load(ctx context.Context, id string) (board.Snapshot, error)

	// Save writes snap under snap.Board.ID, replacing any previous value.
	Save(ctx context.Context, snap board.Snapshot) error

	// Delete removes the board, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List describes every stored board, sorted by id.
	List(ctx context.Context) ([]Entry, error)

	// Close releases resources held by the store.
	Close() error
}

// Entry summarizes a stored board.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Boxes     int       `json:"boxes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// record is the stored form of a snapshot.
type record struct {
	Snapshot  board.Snapshot `json:"snapshot" bson:"snapshot"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

func newRecord(snap board.Snapshot) record {
	return record{Snapshot: snap, UpdatedAt: time.Now().UTC()}
}

func (r record) entry() Entry {
	return Entry{
		ID:        r.Snapshot.Board.ID,
		Name:      r.Snapshot.Board.Name,
		Boxes:     len(r.Snapshot.Boxes),
		UpdatedAt: r.UpdatedAt,
	}
}

func encodeRecord(r record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode board %q: %w", r.Snapshot.Board.ID, err)
	}
	return data, nil
}

func decodeRecord(data []byte) (record, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return record{}, fmt.Errorf("decode board: %w", err)
	}
	return r, nil
}

// checkID rejects ids that cannot be used as keys or file names.
func checkID(id string) error {
	return gerrors.ValidateID("board", id)
}
