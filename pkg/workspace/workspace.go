package workspace

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/store"
)

// Workspace funnels board access through a store with per-board locking.
//
// The zero value is not usable; create one with New. A Workspace is safe for
// concurrent use.
type Workspace struct {
	Store  store.Store
	Engine *board.Engine
	Logger *log.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a workspace. A nil store uses an in-memory store, a nil
// engine uses board.NewEngine(), and a nil logger uses log.Default().
func New(s store.Store, e *board.Engine, logger *log.Logger) *Workspace {
	if s == nil {
		s = store.NewMemoryStore()
	}
	if e == nil {
		e = board.NewEngine()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Workspace{
		Store:  s,
		Engine: e,
		Logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lock acquires the mutex for board id and returns its release function.
func (w *Workspace) lock(id string) func() {
	w.mu.Lock()
	m, ok := w.locks[id]
	if !ok {
		m = &sync.Mutex{}
		w.locks[id] = m
	}
	w.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// Get returns the stored snapshot of board id.
func (w *Workspace) Get(ctx context.Context, id string) (board.Snapshot, error) {
	return w.load(ctx, id)
}

// Open restores board id for read-only use. Changes to the returned board
// are not saved; use Update for that.
func (w *Workspace) Open(ctx context.Context, id string) (*board.Board, error) {
	snap, err := w.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return board.Restore(snap)
}

// List describes every stored board.
func (w *Workspace) List(ctx context.Context) ([]store.Entry, error) {
	entries, err := w.Store.List(ctx)
	if err != nil {
		return nil, storageError(err, "list boards")
	}
	return entries, nil
}

// Create stores a new board. The snapshot must pass every board invariant;
// DUPLICATE_ID is returned if the id is taken.
func (w *Workspace) Create(ctx context.Context, snap board.Snapshot) (board.Snapshot, error) {
	return w.put(ctx, snap, false)
}

// Put stores snap, replacing any board with the same id.
func (w *Workspace) Put(ctx context.Context, snap board.Snapshot) (board.Snapshot, error) {
	return w.put(ctx, snap, true)
}

func (w *Workspace) put(ctx context.Context, snap board.Snapshot, replace bool) (board.Snapshot, error) {
	b, err := board.Restore(snap)
	if err != nil {
		return board.Snapshot{}, err
	}
	id := b.ID()
	defer w.lock(id)()

	if !replace {
		_, err := w.Store.Load(ctx, id)
		switch {
		case err == nil:
			return board.Snapshot{}, errors.New(errors.ErrCodeDuplicateID, "board %q already exists", id)
		case !stderrors.Is(err, store.ErrNotFound):
			return board.Snapshot{}, storageError(err, "load board %q", id)
		}
	}
	out := b.Snapshot()
	if err := w.save(ctx, out); err != nil {
		return board.Snapshot{}, err
	}
	w.Logger.Info("stored board", "board", id, "boxes", len(out.Boxes), "replace", replace)
	return out, nil
}

// Delete removes board id.
func (w *Workspace) Delete(ctx context.Context, id string) error {
	defer w.lock(id)()
	err := w.Store.Delete(ctx, id)
	if stderrors.Is(err, store.ErrNotFound) {
		return errors.New(errors.ErrCodeNotFound, "board %q not found", id)
	}
	if err != nil {
		return storageError(err, "delete board %q", id)
	}
	w.Logger.Info("deleted board", "board", id)
	return nil
}

// Update loads board id, calls fn with the restored board and the engine,
// and saves the result if fn returns nil. The whole sequence holds the
// board's lock.
func (w *Workspace) Update(ctx context.Context, id string, fn func(b *board.Board, e *board.Engine) error) (board.Snapshot, error) {
	defer w.lock(id)()

	snap, err := w.load(ctx, id)
	if err != nil {
		return board.Snapshot{}, err
	}
	b, err := board.Restore(snap)
	if err != nil {
		return board.Snapshot{}, err
	}
	if err := fn(b, w.Engine); err != nil {
		w.Logger.Debug("update rejected", "board", id, "err", err)
		return board.Snapshot{}, err
	}
	out := b.Snapshot()
	if err := w.save(ctx, out); err != nil {
		return board.Snapshot{}, err
	}
	return out, nil
}

func (w *Workspace) load(ctx context.Context, id string) (board.Snapshot, error) {
	start := time.Now()
	snap, err := w.Store.Load(ctx, id)
	if stderrors.Is(err, store.ErrNotFound) {
		return board.Snapshot{}, errors.New(errors.ErrCodeNotFound, "board %q not found", id)
	}
	if err != nil {
		return board.Snapshot{}, storageError(err, "load board %q", id)
	}
	w.Logger.Debug("loaded board", "board", id, "duration", time.Since(start))
	return snap, nil
}

func (w *Workspace) save(ctx context.Context, snap board.Snapshot) error {
	start := time.Now()
	if err := w.Store.Save(ctx, snap); err != nil {
		return storageError(err, "save board %q", snap.Board.ID)
	}
	w.Logger.Debug("saved board", "board", snap.Board.ID, "boxes", len(snap.Boxes), "duration", time.Since(start))
	return nil
}

// storageError tags a store failure with STORAGE unless it already carries
// a code (the stores report malformed ids as INVALID_ARGUMENT).
func storageError(err error, format string, args ...any) error {
	if errors.GetCode(err) != "" {
		return err
	}
	return errors.Wrap(errors.ErrCodeStorage, err, format, args...)
}

// Close closes the underlying store.
func (w *Workspace) Close() error { return w.Store.Close() }
