package board

import (
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
)

// Snapshot is the serializable state of a board: everything needed to
// rebuild it with [Restore].
type Snapshot struct {
	Board          BoardConfig       `json:"board" bson:"board"`
	Boxes          []BoxSnapshot     `json:"boxes" bson:"boxes"`
	Palletes       []PalleteSnapshot `json:"palletes" bson:"palletes"`
	DefaultPallete string            `json:"default_pallete,omitempty" bson:"default_pallete,omitempty"`
}

// BoxSnapshot is one box. An empty Container means the board surface;
// otherwise it names a pallete.
type BoxSnapshot struct {
	ID          string            `json:"id" bson:"id"`
	Container   string            `json:"container,omitempty" bson:"container,omitempty"`
	Dimensions  grid.Rect         `json:"dimensions" bson:"dimensions"`
	Resize      ResizeConstraints `json:"resize" bson:"resize"`
	LinkedBoxID string            `json:"linked_box_id,omitempty" bson:"linked_box_id,omitempty"`
	Resizable   bool              `json:"resizable" bson:"resizable"`
	Moveable    bool              `json:"moveable" bson:"moveable"`
	Name        string            `json:"name,omitempty" bson:"name,omitempty"`
	Content     string            `json:"content,omitempty" bson:"content,omitempty"`
	Class       string            `json:"class,omitempty" bson:"class,omitempty"`
}

// PalleteSnapshot is one pallete and the ids of the boxes it holds.
type PalleteSnapshot struct {
	ID     string        `json:"id" bson:"id"`
	Config PalleteConfig `json:"config" bson:"config"`
	BoxIDs []string      `json:"box_ids" bson:"box_ids"`
}

// OnBoard reports whether the box sits on the board surface.
func (s BoxSnapshot) OnBoard() bool { return s.Container == "" }

// Snapshot captures the board. Boxes and palletes are sorted by id.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Board:          b.Config(),
		Boxes:          make([]BoxSnapshot, 0, len(b.all)),
		Palletes:       make([]PalleteSnapshot, 0, len(b.palletes)),
		DefaultPallete: b.defaultPallete,
	}
	for _, x := range b.AllBoxes() {
		bs := BoxSnapshot{
			ID:          x.id,
			Dimensions:  x.dims,
			Resize:      x.resize,
			LinkedBoxID: x.linked,
			Resizable:   x.resizable,
			Moveable:    x.moveable,
			Name:        x.name,
			Content:     x.content,
			Class:       x.class,
		}
		if p := x.Pallete(); p != nil {
			bs.Container = p.id
		}
		snap.Boxes = append(snap.Boxes, bs)
	}
	for _, p := range b.Palletes() {
		ps := PalleteSnapshot{ID: p.id, Config: p.cfg, BoxIDs: []string{}}
		for _, x := range p.Boxes() {
			ps.BoxIDs = append(ps.BoxIDs, x.id)
		}
		snap.Palletes = append(snap.Palletes, ps)
	}
	return snap
}

// Box returns the snapshot entry for id.
func (s Snapshot) Box(id string) (BoxSnapshot, bool) {
	for _, x := range s.Boxes {
		if x.ID == id {
			return x, true
		}
	}
	return BoxSnapshot{}, false
}

// Restore rebuilds a board from a snapshot. Structural problems (unknown
// pallete, duplicate id, bad link, inconsistent membership) fail with
// INVALID_ARGUMENT; on-board geometry that breaks bounds, overlap or size
// limits fails with REJECTED_PLACEMENT. No hooks fire.
//
// Boxes that an on-board box links to skip the geometry checks: LinkLenient
// commits a partner's complementary rectangle unchecked, and such a board
// must stay loadable so the pair can be resized back or the partner removed.
// [Board.Check] still reports them.
func Restore(s Snapshot) (*Board, error) {
	b, err := New(s.Board)
	if err != nil {
		return nil, err
	}
	if err := restorePalletes(b, s); err != nil {
		return nil, err
	}
	for _, bs := range s.Boxes {
		if err := restoreBox(b, bs); err != nil {
			return nil, err
		}
	}
	for _, x := range b.all {
		if err := checkLinkTarget(b, x.id, x.linked); err != nil {
			return nil, err
		}
	}
	for _, ps := range s.Palletes {
		p := b.palletes[ps.ID]
		if len(ps.BoxIDs) != p.Len() {
			return nil, errors.New(errors.ErrCodeInvalidArgument, "pallete %q lists %d boxes, holds %d", ps.ID, len(ps.BoxIDs), p.Len())
		}
		for _, id := range ps.BoxIDs {
			if !p.Has(id) {
				return nil, errors.New(errors.ErrCodeInvalidArgument, "pallete %q lists box %q that is not in it", ps.ID, id)
			}
		}
	}
	if err := checkSurface(b, linkTargets(b)); err != nil {
		return nil, err
	}
	return b, nil
}

// restorePalletes registers the default pallete first so it stays the
// default.
func restorePalletes(b *Board, s Snapshot) error {
	order := make([]PalleteSnapshot, 0, len(s.Palletes))
	found := s.DefaultPallete == ""
	for _, ps := range s.Palletes {
		if ps.ID == s.DefaultPallete {
			order = append([]PalleteSnapshot{ps}, order...)
			found = true
			continue
		}
		order = append(order, ps)
	}
	if !found {
		return errors.New(errors.ErrCodeInvalidArgument, "default pallete %q is not in the snapshot", s.DefaultPallete)
	}
	for _, ps := range order {
		if _, err := b.RegisterPallete(ps.ID, ps.Config); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidArgument, err, "restore pallete %q", ps.ID)
		}
	}
	return nil
}

func restoreBox(b *Board, bs BoxSnapshot) error {
	if err := errors.ValidateID("box", bs.ID); err != nil {
		return err
	}
	if _, ok := b.all[bs.ID]; ok {
		return errors.New(errors.ErrCodeInvalidArgument, "box %q appears twice", bs.ID)
	}
	if err := bs.Resize.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, err, "box %q", bs.ID)
	}
	var dst Container = b
	if !bs.OnBoard() {
		p, ok := b.palletes[bs.Container]
		if !ok {
			return errors.New(errors.ErrCodeInvalidArgument, "box %q is in unknown pallete %q", bs.ID, bs.Container)
		}
		dst = p
	}
	x := &Box{
		id:        bs.ID,
		name:      bs.Name,
		content:   bs.Content,
		class:     bs.Class,
		dims:      bs.Dimensions,
		resize:    bs.Resize,
		linked:    bs.LinkedBoxID,
		resizable: bs.Resizable,
		moveable:  bs.Moveable,
	}
	moveBox(x, dst)
	b.all[x.id] = x
	return nil
}

// checkSurface verifies bounds, size limits and pairwise overlap of the
// on-board boxes. Boxes in exempt are not checked.
func checkSurface(b *Board, exempt map[string]bool) error {
	onBoard := b.Boxes()
	bounds := b.Bounds()
	margin := b.Margin()
	for i, x := range onBoard {
		if exempt[x.id] {
			continue
		}
		if x.dims.Empty() {
			return errors.New(errors.ErrCodeRejectedPlacement, "box %q at %s has no area", x.id, x.dims)
		}
		if !x.dims.Within(bounds.Width, bounds.Height) {
			return errors.New(errors.ErrCodeRejectedPlacement, "box %q at %s is outside the %dx%d board", x.id, x.dims, bounds.Width, bounds.Height)
		}
		if x.resizable && !x.resize.Allows(x.dims) {
			return errors.New(errors.ErrCodeRejectedPlacement, "box %q size %dx%d is outside its limits", x.id, x.dims.Width, x.dims.Height)
		}
		for _, y := range onBoard[i+1:] {
			if exempt[y.id] || x.linked == y.id || y.linked == x.id {
				continue
			}
			if grid.IntersectsWithMargin(x.dims, y.dims, margin) {
				return errors.New(errors.ErrCodeRejectedPlacement, "box %q at %s overlaps box %q at %s", x.id, x.dims, y.id, y.dims)
			}
		}
	}
	return nil
}

// linkTargets returns the ids of on-board boxes that another on-board box
// links to.
func linkTargets(b *Board) map[string]bool {
	targets := map[string]bool{}
	for _, x := range b.Boxes() {
		if p := b.partner(x); p != nil {
			targets[p.id] = true
		}
	}
	return targets
}

// Check verifies the board invariants. It returns nil for any board built
// only through the engine with LinkAtomic.
func (b *Board) Check() error {
	for _, x := range b.all {
		if err := checkLinkTarget(b, x.id, x.linked); err != nil {
			return err
		}
	}
	return checkSurface(b, nil)
}
