// Package render draws previews of board snapshots.
//
// The engine never renders; these previews exist for the CLI, the HTTP API
// and tests, so a layout can be inspected without a browser front end.
//
//   - [SVG] draws the board at its pixel size, every on-board box, link
//     lines between linked boxes, and one strip per pallete listing the boxes
//     it holds. Built with github.com/ajstarks/svgo.
//   - [Text] draws the board as a character grid, one character per grid
//     unit, followed by a legend.
//   - [Convert] rasterizes SVG output to PDF or PNG with the external
//     rsvg-convert tool (from librsvg).
//
// All functions take a [board.Snapshot], so stored boards can be rendered
// without restoring them.
//
//	snap := b.Snapshot()
//	svg := render.SVG(snap, render.WithGrid(), render.WithLinks())
//	fmt.Print(render.Text(snap))
package render
