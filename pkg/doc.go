// Package pkg holds the gridboard libraries.
//
// # Overview
//
// Gridboard is a grid layout constraint engine for dashboard-style boards:
// rectangular boxes live on a bounded grid, may be resized and moved within
// step and size limits, can be parked on palletes, and may be linked so that
// resizing one box gives the difference to its partner. The engine validates
// every candidate placement and leaves the board unchanged when one is
// rejected.
//
// The libraries are organized in layers:
//
//  1. [core/grid] - integer rectangles and pixel/grid conversion
//  2. [core/board] - boards, boxes, palletes and the placement engine
//  3. [io] - TOML board definitions and JSON snapshots
//  4. [store] - snapshot persistence (memory, file, sqlite, redis, mongo)
//  5. [workspace] - serialized load-mutate-save over a store
//  6. [render] - SVG and text previews
//
// Cross-cutting packages:
//
//   - [errors] - coded errors shared by every layer
//   - [observability] - hook interfaces for engine and store events
//   - [buildinfo] - version stamp
//
// # Data Flow
//
//	board.toml ──io.ImportTOML──▶ board.Board ──Snapshot──▶ store.Store
//	                                  ▲                          │
//	                                  └──────board.Restore───────┘
//
// A [workspace.Workspace] performs that round trip for each mutation under a
// per-board lock, so the CLI and the HTTP server share one code path.
//
// # Quick Start
//
//	b, err := board.New(board.BoardConfig{ID: "main", Width: 36, Height: 27})
//	if err != nil {
//	    return err
//	}
//	e := board.NewEngine()
//	chart, err := e.CreateBox(b, "chart", board.BoxConfig{
//	    Dimensions: grid.Rect{Left: 0, Top: 0, Width: 9, Height: 9},
//	})
//	if err != nil {
//	    return err
//	}
//	if _, err := e.ApplyResize(b, chart, grid.PixelRect{Width: 330, Height: 180}); err != nil {
//	    // rejected: chart keeps its previous dimensions
//	}
//	fmt.Print(render.Text(b.Snapshot()))
//
// [core/grid]: github.com/matzehuels/gridboard/pkg/core/grid
// [core/board]: github.com/matzehuels/gridboard/pkg/core/board
// [io]: github.com/matzehuels/gridboard/pkg/io
// [store]: github.com/matzehuels/gridboard/pkg/store
// [workspace]: github.com/matzehuels/gridboard/pkg/workspace
// [workspace.Workspace]: github.com/matzehuels/gridboard/pkg/workspace#Workspace
// [render]: github.com/matzehuels/gridboard/pkg/render
// [errors]: github.com/matzehuels/gridboard/pkg/errors
// [observability]: github.com/matzehuels/gridboard/pkg/observability
// [buildinfo]: github.com/matzehuels/gridboard/pkg/buildinfo
package pkg
