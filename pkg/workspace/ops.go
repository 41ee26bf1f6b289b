package workspace

import (
	"context"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
)

// Validate reports whether box boxID may occupy r (grid units) on board id.
// The returned error explains a rejection; a false result with a nil error
// never happens. Nothing is saved.
func (w *Workspace) Validate(ctx context.Context, id, boxID string, r grid.Rect) (bool, error) {
	b, err := w.Open(ctx, id)
	if err != nil {
		return false, err
	}
	var box *board.Box
	if boxID != "" {
		if box, err = b.Lookup(boxID); err != nil {
			return false, err
		}
	}
	if err := w.Engine.CheckPlacement(b, box, r); err != nil {
		return false, err
	}
	return true, nil
}

// Resize applies a pixel resize gesture to a box.
func (w *Workspace) Resize(ctx context.Context, id, boxID string, px grid.PixelRect) (grid.Rect, error) {
	var out grid.Rect
	_, err := w.Update(ctx, id, func(b *board.Board, e *board.Engine) error {
		box, err := b.Lookup(boxID)
		if err != nil {
			return err
		}
		out, err = e.ApplyResize(b, box, px)
		return err
	})
	return out, err
}

// Move drops an on-board box at a pixel position.
func (w *Workspace) Move(ctx context.Context, id, boxID string, to grid.PixelPoint) (grid.Rect, error) {
	var out grid.Rect
	_, err := w.Update(ctx, id, func(b *board.Board, e *board.Engine) error {
		box, err := b.Lookup(boxID)
		if err != nil {
			return err
		}
		out, err = e.Move(b, box, to)
		return err
	})
	return out, err
}

// Transfer moves a box into a pallete; an empty palleteID selects the
// default pallete. It returns the id of the pallete that received the box.
func (w *Workspace) Transfer(ctx context.Context, id, boxID, palleteID string) (string, error) {
	var out string
	_, err := w.Update(ctx, id, func(b *board.Board, e *board.Engine) error {
		box, err := b.Lookup(boxID)
		if err != nil {
			return err
		}
		p, err := e.TransferToPallete(b, box, palleteID)
		if err != nil {
			return err
		}
		out = p.ID()
		return nil
	})
	return out, err
}

// Place moves a box from its pallete onto the board at a pixel rectangle.
func (w *Workspace) Place(ctx context.Context, id, boxID string, px grid.PixelRect) (grid.Rect, error) {
	var out grid.Rect
	_, err := w.Update(ctx, id, func(b *board.Board, e *board.Engine) error {
		box, err := b.Lookup(boxID)
		if err != nil {
			return err
		}
		out, err = e.TransferToBoard(b, box, px)
		return err
	})
	return out, err
}

// AddBox creates a box and returns its snapshot entry.
func (w *Workspace) AddBox(ctx context.Context, id, boxID string, cfg board.BoxConfig) (board.BoxSnapshot, error) {
	snap, err := w.Update(ctx, id, func(b *board.Board, e *board.Engine) error {
		_, err := e.CreateBox(b, boxID, cfg)
		return err
	})
	if err != nil {
		return board.BoxSnapshot{}, err
	}
	bs, _ := snap.Box(boxID)
	return bs, nil
}

// RemoveBox destroys a box.
func (w *Workspace) RemoveBox(ctx context.Context, id, boxID string) error {
	_, err := w.Update(ctx, id, func(b *board.Board, e *board.Engine) error {
		box, err := b.Lookup(boxID)
		if err != nil {
			return err
		}
		return e.DestroyBox(b, box)
	})
	return err
}

// Link sets or clears (empty partnerID) a box's link.
func (w *Workspace) Link(ctx context.Context, id, boxID, partnerID string) error {
	_, err := w.Update(ctx, id, func(b *board.Board, e *board.Engine) error {
		box, err := b.Lookup(boxID)
		if err != nil {
			return err
		}
		return e.Link(b, box, partnerID)
	})
	return err
}

// AddPallete registers a pallete on board id.
func (w *Workspace) AddPallete(ctx context.Context, id, palleteID string, cfg board.PalleteConfig) error {
	_, err := w.Update(ctx, id, func(b *board.Board, _ *board.Engine) error {
		_, err := b.RegisterPallete(palleteID, cfg)
		return err
	})
	return err
}
