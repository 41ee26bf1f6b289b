// Package store persists board snapshots.
//
// A [Store] maps board ids to [board.Snapshot] values. Backends:
//
//   - memory: process-local, for tests and one-shot CLI runs
//   - file: one JSON file per board in a directory (CLI default)
//   - sqlite: a single database file via modernc.org/sqlite (no cgo)
//   - redis: shared storage for several server instances
//   - mongo: a MongoDB collection with one document per board
//
// [Open] selects a backend from a [Config] and wraps it so every call is
// reported to the registered [observability.StoreHooks].
//
// # Usage
//
//	s, err := store.Open(ctx, store.Config{Backend: store.BackendFile, DataDir: dir})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	if err := s.Save(ctx, b.Snapshot()); err != nil {
//	    return err
//	}
//	snap, err := s.Load(ctx, "main")
//	if errors.Is(err, store.ErrNotFound) {
//	    // no such board
//	}
//
// Stores do not serialize read-modify-write sequences; pkg/workspace does.
package store
