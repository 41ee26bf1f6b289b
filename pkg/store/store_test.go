package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/observability"
)

func sampleSnapshot(t *testing.T, id string) board.Snapshot {
	t.Helper()
	b, err := board.New(board.BoardConfig{ID: id, Name: "Sample " + id})
	require.NoError(t, err)
	_, err = b.RegisterPallete("tray", board.PalleteConfig{})
	require.NoError(t, err)

	e := board.NewEngine(board.WithHooks(observability.NoopBoardHooks{}))
	_, err = e.CreateBox(b, "chart", board.BoxConfig{Name: "Chart"})
	require.NoError(t, err)
	_, err = e.CreateBox(b, "notes", board.BoxConfig{
		Dimensions:  grid.Rect{Left: 10, Width: 9, Height: 9},
		LinkedBoxID: "chart",
	})
	require.NoError(t, err)
	_, err = e.CreateBox(b, "spare", board.BoxConfig{Pallete: "tray"})
	require.NoError(t, err)
	return b.Snapshot()
}

// runContract exercises the behavior every backend must share.
func runContract(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("LoadMissing", func(t *testing.T) {
		_, err := s.Load(ctx, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SaveLoad", func(t *testing.T) {
		want := sampleSnapshot(t, "alpha")
		require.NoError(t, s.Save(ctx, want))

		got, err := s.Load(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, want, got)

		restored, err := board.Restore(got)
		require.NoError(t, err)
		assert.Equal(t, 2, restored.Len())
	})

	t.Run("Overwrite", func(t *testing.T) {
		snap := sampleSnapshot(t, "alpha")
		snap.Board.Name = "Renamed"
		require.NoError(t, s.Save(ctx, snap))

		got, err := s.Load(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Board.Name)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, sampleSnapshot(t, "beta")))

		entries, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "alpha", entries[0].ID)
		assert.Equal(t, "Renamed", entries[0].Name)
		assert.Equal(t, 3, entries[0].Boxes)
		assert.Equal(t, "beta", entries[1].ID)
		assert.False(t, entries[1].UpdatedAt.IsZero())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "beta"))
		require.ErrorIs(t, s.Delete(ctx, "beta"), ErrNotFound)

		_, err := s.Load(ctx, "beta")
		require.ErrorIs(t, err, ErrNotFound)

		entries, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("RejectsBadID", func(t *testing.T) {
		snap := sampleSnapshot(t, "gamma")
		snap.Board.ID = "../escape"
		require.Error(t, s.Save(ctx, snap))
	})
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	runContract(t, s)

	require.NoError(t, s.Close())
	_, err := s.Load(context.Background(), "alpha")
	require.ErrorIs(t, err, ErrClosed)
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, dir, s.Path())

	runContract(t, s)

	// Stray and corrupt files are ignored by List.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	entries, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = s.Load(context.Background(), "broken")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSQLiteStore(context.Background(), dir)
	require.NoError(t, err)
	runContract(t, s)
	require.NoError(t, s.Close())

	// Data survives reopening the database file.
	s, err = NewSQLiteStore(context.Background(), dir)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Board.Name)
}
