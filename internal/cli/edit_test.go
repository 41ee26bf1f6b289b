package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/observability"
)

func newEditTestModel(t *testing.T) editModel {
	t.Helper()
	zero := 0
	b, err := board.New(board.BoardConfig{ID: "main", Width: 10, Height: 10, CellSize: 10, Margin: &zero})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.RegisterPallete("tray", board.PalleteConfig{}); err != nil {
		t.Fatal(err)
	}
	e := board.NewEngine(board.WithHooks(observability.NoopBoardHooks{}))
	loose := board.ResizeConstraints{MinWidth: 1, MinHeight: 1, MaxWidth: 10, MaxHeight: 10, WidthStep: 1, HeightStep: 1}
	for id, r := range map[string]grid.Rect{
		"a": {Width: 2, Height: 2},
		"b": {Left: 5, Width: 2, Height: 2},
	} {
		if _, err := e.CreateBox(b, id, board.BoxConfig{Dimensions: r, Resize: loose}); err != nil {
			t.Fatal(err)
		}
	}
	return newEditModel(b, e)
}

func press(m editModel, keys ...tea.KeyMsg) editModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(editModel)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestEditModelMoveAndResize(t *testing.T) {
	m := press(newEditTestModel(t), tea.KeyMsg{Type: tea.KeyRight}, runes("L"), runes("J"))

	a, _ := m.board.Box("a")
	if got, want := a.Dimensions(), (grid.Rect{Left: 1, Width: 3, Height: 3}); got != want {
		t.Errorf("Dimensions() = %v, want %v", got, want)
	}
	if m.changes != 3 {
		t.Errorf("changes = %d, want 3", m.changes)
	}
	if m.failed {
		t.Errorf("unexpected failure: %s", m.status)
	}
}

func TestEditModelRejection(t *testing.T) {
	m := press(newEditTestModel(t), tea.KeyMsg{Type: tea.KeyLeft})

	if !m.failed || m.status == "" {
		t.Errorf("move past the edge should fail, status = %q", m.status)
	}
	a, _ := m.board.Box("a")
	if got := a.Dimensions(); got != (grid.Rect{Width: 2, Height: 2}) {
		t.Errorf("rejected move changed box: %v", got)
	}
	if m.changes != 0 {
		t.Errorf("changes = %d, want 0", m.changes)
	}
}

func TestEditModelParkAndPlace(t *testing.T) {
	m := press(newEditTestModel(t), tea.KeyMsg{Type: tea.KeyTab}, runes("t"))

	b, _ := m.board.Box("b")
	if b.OnBoard() {
		t.Fatal("box b should be parked")
	}
	if !strings.Contains(m.View(), "pallete tray") {
		t.Errorf("View() should show the pallete:\n%s", m.View())
	}

	m = press(m, runes("p"))
	if !b.OnBoard() || b.Dimensions() != (grid.Rect{Left: 5, Width: 2, Height: 2}) {
		t.Errorf("placed box = %v on board %v", b.Dimensions(), b.OnBoard())
	}
}

func TestEditModelSelection(t *testing.T) {
	m := newEditTestModel(t)
	if m.selected().ID() != "a" {
		t.Fatalf("initial selection = %q, want a", m.selected().ID())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.selected().ID() != "b" {
		t.Errorf("shift+tab selection = %q, want b", m.selected().ID())
	}
}

func TestEditModelQuit(t *testing.T) {
	m := newEditTestModel(t)
	next, cmd := m.Update(runes("s"))
	if cmd == nil || !next.(editModel).save {
		t.Error("s should save and quit")
	}
	next, cmd = m.Update(runes("q"))
	if cmd == nil || next.(editModel).save {
		t.Error("q should quit without saving")
	}
}
