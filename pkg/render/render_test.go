package render

import (
	"strings"
	"testing"

	"github.com/samber/lo"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/observability"
)

func sample(t *testing.T) board.Snapshot {
	t.Helper()
	b, err := board.New(board.BoardConfig{ID: "preview", Width: 10, Height: 5, CellSize: 10, Margin: lo.ToPtr(0)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.RegisterPallete("tray", board.PalleteConfig{}); err != nil {
		t.Fatal(err)
	}
	e := board.NewEngine(board.WithHooks(observability.NoopBoardHooks{}))
	limits := board.ResizeConstraints{MinWidth: 1, MinHeight: 1, MaxWidth: 10, MaxHeight: 10, WidthStep: 1, HeightStep: 1}
	steps := []struct {
		id  string
		cfg board.BoxConfig
	}{
		{"b", board.BoxConfig{Dimensions: grid.Rect{Left: 4, Width: 3, Height: 2}, Resize: limits, Class: `pane "x"`}},
		{"a", board.BoxConfig{Dimensions: grid.Rect{Width: 4, Height: 2}, Resize: limits, LinkedBoxID: "b", Name: "Chart & notes"}},
		{"c", board.BoxConfig{Resize: limits, Pallete: "tray"}},
	}
	for _, s := range steps {
		if _, err := e.CreateBox(b, s.id, s.cfg); err != nil {
			t.Fatalf("CreateBox(%s): %v", s.id, err)
		}
	}
	return b.Snapshot()
}

func TestText(t *testing.T) {
	out := Text(sample(t))
	lines := strings.Split(out, "\n")

	want := []string{"aaaabbb...", "aaaabbb...", "..........", "..........", ".........."}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("row %d = %q, want %q", i, lines[i], w)
		}
	}
	if !strings.Contains(out, "{0,0,4,2} -> b") {
		t.Errorf("legend missing link:\n%s", out)
	}
	if !strings.Contains(out, "[tray] (default) c") {
		t.Errorf("pallete line missing:\n%s", out)
	}
}

func TestTextMarksOverlap(t *testing.T) {
	snap := sample(t)
	for i := range snap.Boxes {
		if snap.Boxes[i].ID == "b" {
			snap.Boxes[i].Dimensions.Left = 3
		}
	}
	if row := strings.Split(Text(snap), "\n")[0]; row != "aaa#bb...." {
		t.Errorf("row 0 = %q, want aaa#bb....", row)
	}
}

func TestSVG(t *testing.T) {
	out := string(SVG(sample(t), WithGrid(), WithLinks()))

	for _, want := range []string{
		"<svg",
		`width="100"`,
		`height="110"`,
		"<title>preview</title>",
		`id="box-a"`,
		`id="box-b"`,
		`class="pane &#34;x&#34;"`,
		"Chart &amp; notes",
		`data-from="a" data-to="b"`,
		`id="pallete-tray"`,
		"tray (default)",
		`data-box="c"`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(out, `id="box-c"`) {
		t.Error("pallete box drawn on the board")
	}
}

func TestSVGOptions(t *testing.T) {
	out := string(SVG(sample(t), WithoutPalletes(), WithTitle("Custom")))
	if !strings.Contains(out, "<title>Custom</title>") {
		t.Error("title option ignored")
	}
	if strings.Contains(out, "pallete-tray") || !strings.Contains(out, `height="50"`) {
		t.Error("pallete strips drawn despite WithoutPalletes")
	}
	if strings.Contains(out, "data-from") {
		t.Error("links drawn without WithLinks")
	}
}
