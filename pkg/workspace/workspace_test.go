package workspace

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/store"
)

func looseResize() board.ResizeConstraints {
	return board.ResizeConstraints{MinWidth: 1, MinHeight: 1, MaxWidth: 10, MaxHeight: 10, WidthStep: 1, HeightStep: 1}
}

// sampleBoard is a 10x10 board (cell 10, margin 0) with linked boxes
// left {0,0,4,4} and right {4,0,4,4} and a default pallete "tray".
func sampleBoard(t *testing.T, id string) board.Snapshot {
	t.Helper()
	zero := 0
	b, err := board.New(board.BoardConfig{ID: id, Width: 10, Height: 10, CellSize: 10, Margin: &zero})
	require.NoError(t, err)
	_, err = b.RegisterPallete("tray", board.PalleteConfig{})
	require.NoError(t, err)

	e := board.NewEngine()
	left, err := e.CreateBox(b, "left", board.BoxConfig{Dimensions: grid.Rect{Width: 4, Height: 4}, Resize: looseResize()})
	require.NoError(t, err)
	_, err = e.CreateBox(b, "right", board.BoxConfig{Dimensions: grid.Rect{Left: 4, Width: 4, Height: 4}, Resize: looseResize(), LinkedBoxID: "left"})
	require.NoError(t, err)
	require.NoError(t, e.Link(b, left, "right"))
	return b.Snapshot()
}

func newWorkspace(t *testing.T) *Workspace {
	t.Helper()
	w := New(store.NewMemoryStore(), nil, log.New(io.Discard))
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func seeded(t *testing.T, id string) *Workspace {
	t.Helper()
	w := newWorkspace(t)
	_, err := w.Create(context.Background(), sampleBoard(t, id))
	require.NoError(t, err)
	return w
}

func TestNewDefaults(t *testing.T) {
	w := New(nil, nil, nil)
	assert.NotNil(t, w.Store)
	assert.NotNil(t, w.Engine)
	assert.NotNil(t, w.Logger)
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	w := seeded(t, "main")

	snap, err := w.Get(ctx, "main")
	require.NoError(t, err)
	assert.Len(t, snap.Boxes, 2)
	assert.Equal(t, "tray", snap.DefaultPallete)

	_, err = w.Create(ctx, sampleBoard(t, "main"))
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicateID), "got %v", err)

	_, err = w.Put(ctx, sampleBoard(t, "main"))
	assert.NoError(t, err)
}

func TestCreateRejectsCorruptSnapshot(t *testing.T) {
	snap := sampleBoard(t, "main")
	snap.Boxes[1].Dimensions.Left = 2
	snap.Boxes[1].LinkedBoxID = ""
	snap.Boxes[0].LinkedBoxID = ""

	w := newWorkspace(t)
	_, err := w.Create(context.Background(), snap)
	require.Error(t, err)

	entries, err := w.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetMissing(t *testing.T) {
	w := newWorkspace(t)
	_, err := w.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound), "got %v", err)

	err = w.Delete(context.Background(), "nope")
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound), "got %v", err)
}

func TestDeleteBadID(t *testing.T) {
	w := newWorkspace(t)
	err := w.Delete(context.Background(), "../etc")
	assert.Error(t, err)
	assert.NotEqual(t, errors.ErrCodeStorage, errors.GetCode(err))
}

func TestStoreFailureIsStorage(t *testing.T) {
	s := store.NewMemoryStore()
	w := New(s, nil, log.New(io.Discard))
	require.NoError(t, s.Close())

	_, err := w.Get(context.Background(), "main")
	assert.True(t, errors.Is(err, errors.ErrCodeStorage), "got %v", err)
	_, err = w.List(context.Background())
	assert.True(t, errors.Is(err, errors.ErrCodeStorage), "got %v", err)
}

func TestResizeMovesPartner(t *testing.T) {
	ctx := context.Background()
	w := seeded(t, "main")

	r, err := w.Resize(ctx, "main", "left", grid.PixelRect{Width: 60, Height: 40})
	require.NoError(t, err)
	assert.Equal(t, grid.Rect{Width: 6, Height: 4}, r)

	snap, err := w.Get(ctx, "main")
	require.NoError(t, err)
	right, ok := snap.Box("right")
	require.True(t, ok)
	assert.Equal(t, grid.Rect{Left: 6, Width: 2, Height: 4}, right.Dimensions)
}

func TestRejectedUpdateIsNotSaved(t *testing.T) {
	ctx := context.Background()
	w := seeded(t, "main")
	before, err := w.Get(ctx, "main")
	require.NoError(t, err)

	// Partner would shrink to zero width.
	_, err = w.Resize(ctx, "main", "left", grid.PixelRect{Width: 80, Height: 40})
	assert.True(t, errors.Is(err, errors.ErrCodeRejectedPlacement), "got %v", err)

	after, err := w.Get(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLenientResizeStaysLoadable(t *testing.T) {
	ctx := context.Background()
	w := New(store.NewMemoryStore(), board.NewEngine(board.WithLinkPolicy(board.LinkLenient)), log.New(io.Discard))
	t.Cleanup(func() { _ = w.Close() })
	_, err := w.Create(ctx, sampleBoard(t, "main"))
	require.NoError(t, err)

	// The partner collapses to zero width and is committed anyway.
	r, err := w.Resize(ctx, "main", "left", grid.PixelRect{Width: 80, Height: 40})
	require.NoError(t, err)
	assert.Equal(t, grid.Rect{Width: 8, Height: 4}, r)

	b, err := w.Open(ctx, "main")
	require.NoError(t, err)
	right, ok := b.Box("right")
	require.True(t, ok)
	assert.Equal(t, grid.Rect{Left: 8, Width: 0, Height: 4}, right.Dimensions())
	assert.True(t, errors.Is(b.Check(), errors.ErrCodeRejectedPlacement))

	r, err = w.Resize(ctx, "main", "left", grid.PixelRect{Width: 40, Height: 40})
	require.NoError(t, err)
	assert.Equal(t, grid.Rect{Width: 4, Height: 4}, r)
	b, err = w.Open(ctx, "main")
	require.NoError(t, err)
	assert.NoError(t, b.Check())

	_, err = w.Resize(ctx, "main", "left", grid.PixelRect{Width: 80, Height: 40})
	require.NoError(t, err)
	require.NoError(t, w.RemoveBox(ctx, "main", "right"))
	snap, err := w.Get(ctx, "main")
	require.NoError(t, err)
	assert.Len(t, snap.Boxes, 1)
	_, err = w.Open(ctx, "main")
	assert.NoError(t, err)
}

func TestUnknownBox(t *testing.T) {
	w := seeded(t, "main")
	_, err := w.Move(context.Background(), "main", "ghost", grid.PixelPoint{})
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound), "got %v", err)
}

func TestPalleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	w := seeded(t, "main")

	id, err := w.Transfer(ctx, "main", "right", "")
	require.NoError(t, err)
	assert.Equal(t, "tray", id)

	r, err := w.Place(ctx, "main", "right", grid.PixelRect{Left: 50, Top: 50, Width: 40, Height: 40})
	require.NoError(t, err)
	assert.Equal(t, grid.Rect{Left: 5, Top: 5, Width: 4, Height: 4}, r)

	require.NoError(t, w.AddPallete(ctx, "main", "archive", board.PalleteConfig{}))
	id, err = w.Transfer(ctx, "main", "right", "archive")
	require.NoError(t, err)
	assert.Equal(t, "archive", id)

	snap, err := w.Get(ctx, "main")
	require.NoError(t, err)
	right, _ := snap.Box("right")
	assert.Equal(t, "archive", right.Container)
	assert.Equal(t, "tray", snap.DefaultPallete)
}

func TestBoxLifecycle(t *testing.T) {
	ctx := context.Background()
	w := seeded(t, "main")

	bs, err := w.AddBox(ctx, "main", "note", board.BoxConfig{Dimensions: grid.Rect{Top: 5, Width: 3, Height: 3}, Resize: looseResize()})
	require.NoError(t, err)
	assert.Equal(t, "note", bs.ID)
	assert.True(t, bs.OnBoard())

	_, err = w.AddBox(ctx, "main", "note", board.BoxConfig{Pallete: "tray"})
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicateID), "got %v", err)

	require.NoError(t, w.RemoveBox(ctx, "main", "note"))
	snap, err := w.Get(ctx, "main")
	require.NoError(t, err)
	_, ok := snap.Box("note")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	w := seeded(t, "main")

	ok, err := w.Validate(ctx, "main", "", grid.Rect{Top: 5, Width: 3, Height: 3})
	assert.True(t, ok)
	assert.NoError(t, err)

	ok, err = w.Validate(ctx, "main", "", grid.Rect{Left: 2, Width: 3, Height: 3})
	assert.False(t, ok)
	assert.True(t, errors.Is(err, errors.ErrCodeRejectedPlacement), "got %v", err)

	ok, err = w.Validate(ctx, "main", "left", grid.Rect{Width: 3, Height: 3})
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	w := seeded(t, "main")

	const n = 16
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.AddBox(ctx, "main", fmt.Sprintf("p%02d", i), board.BoxConfig{Pallete: "tray"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	snap, err := w.Get(ctx, "main")
	require.NoError(t, err)
	assert.Len(t, snap.Boxes, n+2)
}
