package board

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/samber/lo"

	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
)

func buildSample(t *testing.T) *Board {
	t.Helper()
	e := NewEngine(WithHooks(&recorder{}))
	b := newTestBoard(t, 0)
	// Registered out of alphabetical order so the default is not the first
	// pallete by id.
	if _, err := b.RegisterPallete("zeta", PalleteConfig{Class: "dock"}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RegisterPallete("alpha", PalleteConfig{Width: 300}); err != nil {
		t.Fatal(err)
	}
	mustCreate(t, e, b, "right", grid.Rect{Left: 4, Width: 4, Height: 4})
	mustCreate(t, e, b, "left", grid.Rect{Width: 4, Height: 4}, linkedTo("right"), func(c *BoxConfig) {
		c.Name = "Left pane"
		c.Content = "<p>hi</p>"
		c.Class = "pane"
	})
	mustCreate(t, e, b, "spare", grid.Rect{Width: 3, Height: 3}, inPallete("alpha"))
	return b
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	b := buildSample(t)
	snap := b.Snapshot()

	if snap.DefaultPallete != "zeta" {
		t.Errorf("DefaultPallete = %q, want zeta", snap.DefaultPallete)
	}
	if len(snap.Boxes) != 3 || snap.Boxes[0].ID != "left" {
		t.Fatalf("Boxes = %+v", snap.Boxes)
	}
	spare, ok := snap.Box("spare")
	if !ok || spare.Container != "alpha" || spare.OnBoard() {
		t.Errorf("spare = %+v", spare)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	restored, err := Restore(decoded)
	if err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if got := restored.Snapshot(); !reflect.DeepEqual(got, snap) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, snap)
	}
	if restored.DefaultPallete().ID() != "zeta" {
		t.Errorf("restored default = %q, want zeta", restored.DefaultPallete().ID())
	}
	left, _ := restored.Box("left")
	if left.Content() != "<p>hi</p>" || left.LinkedBoxID() != "right" {
		t.Errorf("left = %+v", left.Config())
	}
}

func TestRestoreRejectsCorruptSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Snapshot)
		code   errors.Code
	}{
		{
			name:   "Overlap",
			mutate: func(s *Snapshot) { s.Boxes[0].LinkedBoxID = ""; s.Boxes[1].Dimensions.Left = 3 },
			code:   errors.ErrCodeRejectedPlacement,
		},
		{
			name:   "OutOfBounds",
			mutate: func(s *Snapshot) { s.Boxes[0].Dimensions.Left = 8 },
			code:   errors.ErrCodeRejectedPlacement,
		},
		{
			name:   "OutsideLimits",
			mutate: func(s *Snapshot) { s.Boxes[0].Resize.MaxWidth = 3 },
			code:   errors.ErrCodeRejectedPlacement,
		},
		{
			name:   "DanglingLink",
			mutate: func(s *Snapshot) { s.Boxes[0].LinkedBoxID = "ghost" },
			code:   errors.ErrCodeInvalidArgument,
		},
		{
			name:   "UnknownPallete",
			mutate: func(s *Snapshot) { s.Boxes[2].Container = "nowhere" },
			code:   errors.ErrCodeInvalidArgument,
		},
		{
			name:   "DuplicateBox",
			mutate: func(s *Snapshot) { s.Boxes[2].ID = "left" },
			code:   errors.ErrCodeInvalidArgument,
		},
		{
			name:   "MembershipMismatch",
			mutate: func(s *Snapshot) { s.Palletes[0].BoxIDs = []string{"left"} },
			code:   errors.ErrCodeInvalidArgument,
		},
		{
			name:   "MissingDefault",
			mutate: func(s *Snapshot) { s.DefaultPallete = "gone" },
			code:   errors.ErrCodeInvalidArgument,
		},
		{
			name:   "BadBoard",
			mutate: func(s *Snapshot) { s.Board.CellSize = -1 },
			code:   errors.ErrCodeInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := buildSample(t).Snapshot()
			tt.mutate(&snap)
			_, err := Restore(snap)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestRestoreToleratesLenientPartner(t *testing.T) {
	e := NewEngine(WithHooks(&recorder{}), WithLinkPolicy(LinkLenient))
	b := newTestBoard(t, 0)
	mustCreate(t, e, b, "b", grid.Rect{Left: 4, Width: 4, Height: 4}, func(c *BoxConfig) { c.Resizable = lo.ToPtr(false) })
	a := mustCreate(t, e, b, "a", grid.Rect{Width: 4, Height: 4}, linkedTo("b"))
	if _, err := e.ApplyResize(b, a, grid.PixelRect{Width: 80, Height: 40}); err != nil {
		t.Fatalf("ApplyResize error: %v", err)
	}

	restored, err := Restore(b.Snapshot())
	if err != nil {
		t.Fatalf("Restore error: %v", err)
	}
	if err := restored.Check(); !errors.Is(err, errors.ErrCodeRejectedPlacement) {
		t.Errorf("Check() = %v, want REJECTED_PLACEMENT", err)
	}

	atomic := NewEngine(WithHooks(&recorder{}))
	ra, _ := restored.Box("a")
	if _, err := atomic.ApplyResize(restored, ra, grid.PixelRect{Width: 40, Height: 40}); err != nil {
		t.Fatalf("resize back error: %v", err)
	}
	rb, _ := restored.Box("b")
	if rb.Dimensions() != (grid.Rect{Left: 4, Width: 4, Height: 4}) {
		t.Errorf("partner = %v, want {4,0,4,4}", rb.Dimensions())
	}
	if err := restored.Check(); err != nil {
		t.Errorf("Check() after resize back = %v", err)
	}
}

func TestCheckZeroAreaMessage(t *testing.T) {
	snap := buildSample(t).Snapshot()
	snap.Boxes[0].Dimensions.Width = 0
	_, err := Restore(snap)
	if !errors.Is(err, errors.ErrCodeRejectedPlacement) {
		t.Fatalf("Restore error = %v, want REJECTED_PLACEMENT", err)
	}
	if msg := errors.UserMessage(err); !strings.Contains(msg, "no area") {
		t.Errorf("message = %q, want it to mention no area", msg)
	}
}
