package render

import (
	"bytes"
	"fmt"
	"html"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
)

const (
	stripGap     = 10
	chipWidth    = 90
	chipGap      = 6
	labelPadding = 4
)

const (
	styleBoard   = "fill:#fafafa;stroke:#444;stroke-width:1"
	styleGrid    = "stroke:#e4e4e4;stroke-width:0.5"
	styleBox     = "fill:#cfe3f7;stroke:#1f5f99;stroke-width:1"
	styleFixed   = "fill:#e6e6e6;stroke:#777;stroke-width:1"
	styleLink    = "stroke:#c0392b;stroke-width:1.5;stroke-dasharray:4,3"
	styleStrip   = "fill:#f3efe6;stroke:#8a7a5a;stroke-width:1"
	styleChip    = "fill:#fff;stroke:#8a7a5a;stroke-width:0.75"
	styleLabel   = "font-family:sans-serif;font-size:11px;fill:#222"
	styleCaption = "font-family:sans-serif;font-size:10px;fill:#6b5d40"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	grid     bool
	links    bool
	palletes bool
	title    string
}

// WithGrid draws a line for every grid unit.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.grid = true } }

// WithLinks draws a dashed line between each box and its on-board partner.
func WithLinks() SVGOption { return func(r *svgRenderer) { r.links = true } }

// WithoutPalletes omits the pallete strips below the board.
func WithoutPalletes() SVGOption { return func(r *svgRenderer) { r.palletes = false } }

// WithTitle sets the document title. The default is the board name or id.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// SVG renders snap as a standalone SVG document.
func SVG(snap board.Snapshot, opts ...SVGOption) []byte {
	r := svgRenderer{palletes: true}
	for _, opt := range opts {
		opt(&r)
	}
	cfg := snap.Board.WithDefaults()
	if r.title == "" {
		r.title = cfg.Name
		if r.title == "" {
			r.title = cfg.ID
		}
	}
	conv := grid.NewConverter(cfg.CellSize)
	bounds := conv.ToPixels(grid.Rect{Width: cfg.Width, Height: cfg.Height})

	height := bounds.Height
	if r.palletes {
		for _, p := range snap.Palletes {
			height += stripGap + stripHeight(p)
		}
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(bounds.Width, height, fmt.Sprintf(`data-board="%s"`, cfg.ID))
	canvas.Title(r.title)

	canvas.Rect(0, 0, bounds.Width, bounds.Height, styleBoard)
	if r.grid {
		canvas.Grid(0, 0, bounds.Width, bounds.Height, cfg.CellSize, styleGrid)
	}

	onBoard := map[string]board.BoxSnapshot{}
	for _, x := range snap.Boxes {
		if x.OnBoard() {
			onBoard[x.ID] = x
		}
	}

	canvas.Gid("boxes")
	for _, x := range snap.Boxes {
		if !x.OnBoard() {
			continue
		}
		px := conv.ToPixels(x.Dimensions)
		style := styleBox
		if !x.Moveable {
			style = styleFixed
		}
		canvas.Rect(px.Left, px.Top, px.Width, px.Height, append([]string{style}, boxAttrs(x)...)...)
		canvas.Text(px.Left+labelPadding, px.Top+labelPadding+11, label(x), styleLabel)
	}
	canvas.Gend()

	if r.links {
		canvas.Gid("links")
		for _, x := range snap.Boxes {
			partner, ok := onBoard[x.LinkedBoxID]
			if !x.OnBoard() || !ok {
				continue
			}
			a, b := conv.ToPixels(x.Dimensions), conv.ToPixels(partner.Dimensions)
			canvas.Line(a.Left+a.Width/2, a.Top+a.Height/2, b.Left+b.Width/2, b.Top+b.Height/2,
				styleLink, fmt.Sprintf(`data-from="%s" data-to="%s"`, x.ID, partner.ID))
		}
		canvas.Gend()
	}

	if r.palletes {
		y := bounds.Height
		for _, p := range snap.Palletes {
			y += stripGap
			drawStrip(canvas, p, snap, y, bounds.Width)
			y += stripHeight(p)
		}
	}

	canvas.End()
	return buf.Bytes()
}

func stripHeight(p board.PalleteSnapshot) int {
	if h := p.Config.WithDefaults().Height; h > 0 {
		return h
	}
	return board.DefaultPalleteHeight
}

func drawStrip(canvas *svg.SVG, p board.PalleteSnapshot, snap board.Snapshot, y, width int) {
	h := stripHeight(p)
	canvas.Gid("pallete-" + p.ID)
	canvas.Rect(0, y, width, h, styleStrip)
	caption := p.ID
	if p.ID == snap.DefaultPallete {
		caption += " (default)"
	}
	canvas.Text(labelPadding, y+12, caption, styleCaption)
	x := labelPadding
	chipTop := y + 16
	chipHeight := max(h-20, 12)
	for _, id := range p.BoxIDs {
		if x+chipWidth > width {
			break
		}
		canvas.Rect(x, chipTop, chipWidth, chipHeight, styleChip, fmt.Sprintf(`data-box="%s"`, id))
		name := id
		if bs, ok := snap.Box(id); ok {
			name = label(bs)
		}
		canvas.Text(x+labelPadding, chipTop+min(chipHeight, 14)-2, name, styleLabel)
		x += chipWidth + chipGap
	}
	canvas.Gend()
}

func boxAttrs(x board.BoxSnapshot) []string {
	attrs := []string{fmt.Sprintf(`id="box-%s"`, x.ID)}
	if x.Class != "" {
		attrs = append(attrs, fmt.Sprintf(`class="%s"`, html.EscapeString(x.Class)))
	}
	return attrs
}

func label(x board.BoxSnapshot) string {
	if x.Name != "" {
		return x.Name
	}
	return x.ID
}
