package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

// ReadJSON decodes a board snapshot from r. It does not check the snapshot
// against the board invariants; [board.Restore] does.
func ReadJSON(r io.Reader) (board.Snapshot, error) {
	var snap board.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return board.Snapshot{}, fmt.Errorf("decode: %w", err)
	}
	return snap, nil
}

// ImportJSON reads a snapshot file at path.
func ImportJSON(path string) (board.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes snap as indented JSON to w.
func WriteJSON(snap board.Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes snap to a JSON file at path.
func ExportJSON(snap board.Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(snap, f)
}
