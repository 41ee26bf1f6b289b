package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

// FileStore keeps one JSON file per board in a directory.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a file store rooted at dir. If dir is empty it
// defaults to ~/.config/gridboard/boards. The directory is created if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		d, err := DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(d, "boards")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create board dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// DefaultDataDir returns ~/.config/gridboard.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "gridboard"), nil
}

// Path returns the directory holding the board files.
func (s *FileStore) Path() string { return s.dir }

func (s *FileStore) boardPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}

func (s *FileStore) Load(ctx context.Context, id string) (board.Snapshot, error) {
	if err := checkID(id); err != nil {
		return board.Snapshot{}, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.boardPath(id))
	if os.IsNotExist(err) {
		return board.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("read board file: %w", err)
	}
	r, err := decodeRecord(data)
	if err != nil {
		return board.Snapshot{}, err
	}
	return r.Snapshot, nil
}

// Save writes to a temporary file and renames it, so a crash never leaves a
// truncated board behind.
func (s *FileStore) Save(ctx context.Context, snap board.Snapshot) error {
	if err := checkID(snap.Board.ID); err != nil {
		return err
	}
	data, err := encodeRecord(newRecord(snap))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".board-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write board file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write board file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.boardPath(snap.Board.ID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace board file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.boardPath(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("remove board file: %w", err)
	}
	return nil
}

// List skips files that fail to parse.
func (s *FileStore) List(ctx context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read board dir: %w", err)
	}
	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, f.Name()))
		if err != nil {
			continue
		}
		r, err := decodeRecord(data)
		if err != nil {
			continue
		}
		entries = append(entries, r.entry())
	}
	slices.SortFunc(entries, func(a, b Entry) int { return strings.Compare(a.ID, b.ID) })
	return entries, nil
}

func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
