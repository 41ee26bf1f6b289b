package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteFile is the database file name inside the data directory.
const SQLiteFile = "gridboard.db"

// SQLiteStore keeps boards in a single SQLite table. The snapshot is stored
// as JSON; name and box count are denormalized for List.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) dataDir/gridboard.db.
func NewSQLiteStore(ctx context.Context, dataDir string) (*SQLiteStore, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, SQLiteFile))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (board.Snapshot, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM boards WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return board.Snapshot{}, ErrNotFound
	}
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("query board %q: %w", id, err)
	}
	r, err := decodeRecord([]byte(data))
	if err != nil {
		return board.Snapshot{}, err
	}
	return r.Snapshot, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap board.Snapshot) error {
	if err := checkID(snap.Board.ID); err != nil {
		return err
	}
	r := newRecord(snap)
	data, err := encodeRecord(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO boards (id, name, boxes, snapshot, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			boxes = excluded.boxes,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at`,
		snap.Board.ID, snap.Board.Name, len(snap.Boxes), string(data), r.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save board %q: %w", snap.Board.ID, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete board %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete board %q: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, boxes, updated_at FROM boards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var updated string
		if err := rows.Scan(&e.ID, &e.Name, &e.Boxes, &updated); err != nil {
			return nil, fmt.Errorf("scan board row: %w", err)
		}
		e.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

var _ Store = (*SQLiteStore)(nil)
