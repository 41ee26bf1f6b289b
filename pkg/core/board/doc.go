// Package board implements the grid layout constraint engine.
//
// A [Board] is a bounded grid surface holding non-overlapping boxes. A
// [Pallete] is an unconstrained holding area for boxes taken off the board.
// Every [Box] belongs to exactly one of them at any time. The [Engine] is the
// only way to change a box: it validates a candidate rectangle against the
// board bounds and sibling boxes, commits it, and keeps linked boxes in step.
//
// # Overview
//
// The engine answers three questions for a rendering layer that owns input
// and drawing:
//
//   - is this placement legal? ([Engine.ValidatePlacement])
//   - what are the resulting grid coordinates? ([Engine.ApplyResize],
//     [Engine.Move], [Engine.TransferToBoard])
//   - how must a linked box change? (resize-delta propagation)
//
// Pixel input is converted with the board's [grid.Converter]; everything the
// engine stores is in grid units.
//
// # Invariants
//
// After any operation returns:
//
//  1. Every on-board box lies within the board bounds.
//  2. Margin-expanded rectangles of on-board boxes do not intersect, unless
//     one box links to the other.
//  3. Every box belongs to exactly one container.
//  4. A resizable on-board box satisfies its [ResizeConstraints].
//  5. A link references an existing box of the same board.
//
// A failed operation returns a coded error from pkg/errors and mutates
// nothing.
//
// # Linked Boxes
//
// A box may name a partner with [BoxConfig.LinkedBoxID]. The link is a weak,
// one-directional lookup: it never implies ownership or reciprocity. When a
// linked box is resized, the partner takes the complementary change (see
// [grid.Delta.Complement]) so that two panes sharing a divider keep their
// combined footprint. [LinkAtomic] validates the partner's new rectangle and
// rejects the whole resize if it does not fit; [LinkLenient] commits the
// partner unchecked.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Hosts that mutate a
// board from several goroutines must serialize access per board (see
// pkg/workspace).
//
// # Usage
//
//	b, _ := board.New(board.BoardConfig{ID: "main", Width: 20, Height: 10, CellSize: 10})
//	_, _ = b.RegisterPallete("tray", board.PalleteConfig{})
//
//	e := board.NewEngine()
//	box, err := e.CreateBox(b, "chart", board.BoxConfig{
//	    Dimensions: grid.Rect{Left: 0, Top: 0, Width: 9, Height: 9},
//	})
//
//	// A resize gesture reported in pixels.
//	r, err := e.ApplyResize(b, box, grid.PixelRect{Width: 120, Height: 90})
//	if errors.Is(err, errors.ErrCodeRejectedPlacement) {
//	    // redraw the box at box.Dimensions()
//	}
package board
