// Package io reads and writes board files.
//
// # Formats
//
// Two formats are supported:
//
//   - TOML definitions: hand-written board layouts, read with [ReadTOML] and
//     turned into a live board with [Build].
//   - JSON snapshots: the exact [board.Snapshot] payload, read with
//     [ReadJSON] and written with [WriteJSON]. Snapshots round-trip losslessly
//     and are what the stores persist.
//
// # TOML Definition
//
//	[board]
//	id = "dashboard"
//	name = "Team dashboard"
//	width = 40
//	height = 30
//	cell_size = 10
//	margin = 1
//
//	[[pallete]]
//	id = "tray"          # the first pallete is the default
//
//	[[box]]
//	id = "chart"
//	left = 0
//	top = 0
//	width = 18
//	height = 9
//	linked = "notes"     # optional partner id
//	[box.resize]
//	min_width = 9
//	max_width = 27
//
//	[[box]]
//	id = "notes"
//	pallete = "tray"     # created in the pallete instead of on the board
//
// Omitted fields take the documented defaults of pkg/core/board. Unknown keys
// are an error so that typos do not silently fall back to defaults.
//
// # Links
//
// A box may link to a box declared later in the file. [Build] creates boxes
// in dependency order; mutual links are completed after both boxes exist.
//
// # Export
//
// [DefinitionFromSnapshot] converts a board back into a definition, so
// `gridboard export --format toml` produces a file that [Build] accepts.
package io
