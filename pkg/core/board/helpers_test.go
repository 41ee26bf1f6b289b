package board

import (
	"fmt"
	"testing"

	"github.com/samber/lo"

	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/observability"
)

// loose constraints accept any size on a small test board.
var loose = ResizeConstraints{MinWidth: 1, MinHeight: 1, MaxWidth: 10, MaxHeight: 10, WidthStep: 1, HeightStep: 1}

func newTestBoard(t *testing.T, margin int) *Board {
	t.Helper()
	b, err := New(BoardConfig{ID: "test", Width: 10, Height: 10, CellSize: 10, Margin: lo.ToPtr(margin)})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return b
}

func mustCreate(t *testing.T, e *Engine, b *Board, id string, r grid.Rect, opts ...func(*BoxConfig)) *Box {
	t.Helper()
	cfg := BoxConfig{Dimensions: r, Resize: loose}
	for _, o := range opts {
		o(&cfg)
	}
	x, err := e.CreateBox(b, id, cfg)
	if err != nil {
		t.Fatalf("CreateBox(%q) error: %v", id, err)
	}
	return x
}

func linkedTo(id string) func(*BoxConfig) {
	return func(c *BoxConfig) { c.LinkedBoxID = id }
}

func inPallete(id string) func(*BoxConfig) {
	return func(c *BoxConfig) { c.Pallete = id }
}

// recorder collects hook events as "kind:box" strings.
type recorder struct {
	events []string
	last   observability.BoxEvent
}

func (r *recorder) add(kind string, ev observability.BoxEvent) {
	r.events = append(r.events, fmt.Sprintf("%s:%s", kind, ev.BoxID))
	r.last = ev
}

func (r *recorder) OnBoxCreated(ev observability.BoxEvent)     { r.add("created", ev) }
func (r *recorder) OnBoxResized(ev observability.BoxEvent)     { r.add("resized", ev) }
func (r *recorder) OnBoxMoved(ev observability.BoxEvent)       { r.add("moved", ev) }
func (r *recorder) OnBoxTransferred(ev observability.BoxEvent) { r.add("transferred", ev) }
func (r *recorder) OnBoxDestroyed(ev observability.BoxEvent)   { r.add("destroyed", ev) }

func (r *recorder) reset() { r.events = nil }
