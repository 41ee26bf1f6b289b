// Package workspace is the single serialization point for board mutations.
//
// The engine in pkg/core/board is synchronous and lock-free. A host that
// serves several clients (the HTTP server, or a CLI racing a server on the
// same store) goes through a [Workspace], which holds one mutex per board id
// and runs every load, mutate and save sequence under it:
//
//	w := workspace.New(s, board.NewEngine(), logger)
//	r, err := w.Resize(ctx, "main", "chart", grid.PixelRect{Width: 120, Height: 90})
//
// [Workspace.Update] is the general form: it restores the board, hands it
// to a callback together with the engine, and saves only if the callback
// succeeds. A rejected operation therefore never reaches the store.
//
// Errors carry pkg/errors codes: NOT_FOUND for unknown boards and boxes,
// STORAGE for store failures, and the engine's codes for rejected changes.
package workspace
