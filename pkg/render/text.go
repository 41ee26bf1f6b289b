package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/gridboard/pkg/core/board"
)

const (
	emptyCell = '.'
	// overlapCell marks cells claimed by more than one box, which only linked
	// boxes may do.
	overlapCell = '#'
)

// boxGlyphs label boxes in id order; boxes past the last glyph share '*'.
const boxGlyphs = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Text renders snap as a character grid, one character per grid unit,
// followed by a legend and the pallete contents.
func Text(snap board.Snapshot) string {
	cfg := snap.Board.WithDefaults()
	rows := make([][]rune, cfg.Height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(string(emptyCell), cfg.Width))
	}

	var legend strings.Builder
	n := 0
	for _, x := range snap.Boxes {
		if !x.OnBoard() {
			continue
		}
		glyph := '*'
		if n < len(boxGlyphs) {
			glyph = rune(boxGlyphs[n])
		}
		n++
		fill(rows, x, glyph)

		fmt.Fprintf(&legend, "%c  %-16s %s", glyph, x.ID, x.Dimensions)
		if x.LinkedBoxID != "" {
			fmt.Fprintf(&legend, " -> %s", x.LinkedBoxID)
		}
		legend.WriteByte('\n')
	}

	var out strings.Builder
	for _, row := range rows {
		out.WriteString(string(row))
		out.WriteByte('\n')
	}
	if legend.Len() > 0 {
		out.WriteByte('\n')
		out.WriteString(legend.String())
	}
	for _, p := range snap.Palletes {
		marker := ""
		if p.ID == snap.DefaultPallete {
			marker = " (default)"
		}
		fmt.Fprintf(&out, "\n[%s]%s %s", p.ID, marker, strings.Join(p.BoxIDs, ", "))
	}
	if len(snap.Palletes) > 0 {
		out.WriteByte('\n')
	}
	return out.String()
}

// fill paints x's cells, clipped to the grid.
func fill(rows [][]rune, x board.BoxSnapshot, glyph rune) {
	r := x.Dimensions
	for y := max(r.Top, 0); y < min(r.Bottom(), len(rows)); y++ {
		row := rows[y]
		for col := max(r.Left, 0); col < min(r.Right(), len(row)); col++ {
			if row[col] == emptyCell {
				row[col] = glyph
			} else {
				row[col] = overlapCell
			}
		}
	}
}
