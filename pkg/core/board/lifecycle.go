package board

import (
	"github.com/matzehuels/gridboard/pkg/core/grid"
	"github.com/matzehuels/gridboard/pkg/errors"
)

// CreateBox adds a box to b. Without cfg.Pallete the box is placed on the
// board and its rectangle must pass placement validation; with it the box
// goes straight into that pallete unchecked.
func (e *Engine) CreateBox(b *Board, id string, cfg BoxConfig) (*Box, error) {
	if err := errors.ValidateID("box", id); err != nil {
		return nil, err
	}
	if _, ok := b.all[id]; ok {
		return nil, errors.New(errors.ErrCodeDuplicateID, "box %q already exists on board %q", id, b.cfg.ID)
	}
	cfg = cfg.WithDefaults()
	if err := validateBoxConfig(b, id, cfg); err != nil {
		return nil, err
	}

	var dst Container = b
	if cfg.Pallete != "" {
		p, err := b.resolvePallete(cfg.Pallete)
		if err != nil {
			return nil, err
		}
		dst = p
	} else {
		if cfg.IsResizable() && !cfg.Resize.Allows(cfg.Dimensions) {
			return nil, errors.New(errors.ErrCodeInvalidArgument,
				"box %q size %dx%d is outside its limits", id, cfg.Dimensions.Width, cfg.Dimensions.Height)
		}
		if err := checkPlacement(b, cfg.Dimensions, id, cfg.LinkedBoxID); err != nil {
			return nil, err
		}
	}

	x := newBox(id, cfg)
	moveBox(x, dst)
	b.all[id] = x
	e.notify().OnBoxCreated(event(b, x))
	return x, nil
}

func validateBoxConfig(b *Board, id string, cfg BoxConfig) error {
	if err := cfg.Resize.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, err, "box %q", id)
	}
	if cfg.Dimensions.Empty() {
		return errors.New(errors.ErrCodeInvalidArgument,
			"box %q size %dx%d is not positive", id, cfg.Dimensions.Width, cfg.Dimensions.Height)
	}
	return checkLinkTarget(b, id, cfg.LinkedBoxID)
}

func checkLinkTarget(b *Board, id, target string) error {
	if target == "" {
		return nil
	}
	if target == id {
		return errors.New(errors.ErrCodeInvalidArgument, "box %q cannot link to itself", id)
	}
	if _, ok := b.all[target]; !ok {
		return errors.New(errors.ErrCodeInvalidArgument, "box %q links to unknown box %q", id, target)
	}
	return nil
}

// DestroyBox removes box from its container and from the board. Links held
// by other boxes that point at it are cleared.
func (e *Engine) DestroyBox(b *Board, box *Box) error {
	if !b.owns(box) {
		return notOwned(b, box)
	}
	ev := event(b, box)
	box.container.remove(box)
	box.container = nil
	delete(b.all, box.id)
	for _, other := range b.all {
		if other.linked == box.id {
			other.linked = ""
		}
	}
	e.notify().OnBoxDestroyed(ev)
	return nil
}

// Link sets box's partner to partnerID, or clears it when partnerID is
// empty. Two boxes may link to each other.
//
// Dropping a link is rejected while the old partner still overlaps box on
// the board and does not link back.
func (e *Engine) Link(b *Board, box *Box, partnerID string) error {
	if !b.owns(box) {
		return notOwned(b, box)
	}
	if err := checkLinkTarget(b, box.id, partnerID); err != nil {
		return err
	}
	if old := b.partner(box); old != nil && old.id != partnerID && old.linked != box.id && box.OnBoard() {
		if grid.IntersectsWithMargin(box.dims, old.dims, b.Margin()) {
			return errors.New(errors.ErrCodeRejectedPlacement,
				"box %q overlaps %q and cannot drop the link", box.id, old.id)
		}
	}
	box.linked = partnerID
	return nil
}
