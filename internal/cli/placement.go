package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/core/grid"
)

// rectFlags are the --left/--top/--width/--height flags shared by the
// placement commands. Unset flags keep the box's current value.
type rectFlags struct {
	left, top, width, height int
	px                       bool
}

func (f *rectFlags) register(cmd *cobra.Command, position, size bool) {
	if position {
		cmd.Flags().IntVar(&f.left, "left", 0, "left edge")
		cmd.Flags().IntVar(&f.top, "top", 0, "top edge")
	}
	if size {
		cmd.Flags().IntVar(&f.width, "width", 0, "width")
		cmd.Flags().IntVar(&f.height, "height", 0, "height")
	}
	cmd.Flags().BoolVar(&f.px, "px", false, "values are pixels instead of grid cells")
}

// apply overrides base with the flags set on cmd.
func (f *rectFlags) apply(cmd *cobra.Command, base grid.Rect) grid.Rect {
	set := cmd.Flags().Changed
	if set("left") {
		base.Left = f.left
	}
	if set("top") {
		base.Top = f.top
	}
	if set("width") {
		base.Width = f.width
	}
	if set("height") {
		base.Height = f.height
	}
	return base
}

func (f *rectFlags) any(cmd *cobra.Command) bool {
	set := cmd.Flags().Changed
	return set("left") || set("top") || set("width") || set("height")
}

// target resolves the flags to grid units for box on b. In pixel mode the
// base rectangle is converted to pixels, overridden and converted back.
func (f *rectFlags) target(cmd *cobra.Command, b *board.Board, base grid.Rect) grid.Rect {
	if !f.px {
		return f.apply(cmd, base)
	}
	conv := b.Converter()
	p := conv.ToPixels(base)
	r := f.apply(cmd, grid.Rect{Left: p.Left, Top: p.Top, Width: p.Width, Height: p.Height})
	return conv.ToGrid(grid.PixelRect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height})
}

// validateCommand checks a placement, or the whole board without flags.
func (c *CLI) validateCommand() *cobra.Command {
	var f rectFlags

	cmd := &cobra.Command{
		Use:   "validate <board> [box]",
		Short: "Check a proposed placement or a stored board",
		Long: `Check whether a rectangle is a legal placement on a board.

With a box, unset rectangle flags default to the box's current dimensions and
the box and its linked partner are ignored for collisions. Without any
rectangle flags the stored board is checked against every board invariant.`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			b, err := w.Open(ctx, args[0])
			if err != nil {
				return err
			}

			if !f.any(cmd) {
				if err := b.Check(); err != nil {
					return err
				}
				printSuccess("Board %s is consistent", StyleHighlight.Render(b.ID()))
				return nil
			}

			var box *board.Box
			var base grid.Rect
			if len(args) == 2 {
				if box, err = b.Lookup(args[1]); err != nil {
					return err
				}
				base = box.Dimensions()
			}
			r := f.target(cmd, b, base)
			if err := w.Engine.CheckPlacement(b, box, r); err != nil {
				return err
			}
			printSuccess("%s is a valid placement", describe(r))
			return nil
		},
	}

	f.register(cmd, true, true)
	return cmd
}

// resizeCommand resizes a box, moving its linked partner with it.
func (c *CLI) resizeCommand() *cobra.Command {
	var f rectFlags

	cmd := &cobra.Command{
		Use:   "resize <board> <box>",
		Short: "Resize a box (its linked partner follows)",
		Long: `Resize a box on the board.

The proposed size is snapped to the box's steps and clamped to its limits. If
the box is linked, the partner absorbs the change so the pair keeps its
combined extent.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			var out grid.Rect
			var partner string
			snap, err := w.Update(ctx, args[0], func(b *board.Board, e *board.Engine) error {
				box, err := b.Lookup(args[1])
				if err != nil {
					return err
				}
				partner = box.LinkedBoxID()
				out, err = e.Resize(b, box, f.target(cmd, b, box.Dimensions()))
				return err
			})
			if err != nil {
				return err
			}

			printSuccess("Resized %s to %s", StyleHighlight.Render(args[1]), describe(out))
			if p, ok := snap.Box(partner); ok && p.OnBoard() {
				printDetail("linked %s now %s", partner, describe(p.Dimensions))
			}
			return nil
		},
	}

	f.register(cmd, true, true)
	return cmd
}

// moveCommand repositions a box on the board.
func (c *CLI) moveCommand() *cobra.Command {
	var f rectFlags

	cmd := &cobra.Command{
		Use:               "move <board> <box>",
		Short:             "Move a box on the board",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			var out grid.Rect
			_, err = w.Update(ctx, args[0], func(b *board.Board, e *board.Engine) error {
				box, err := b.Lookup(args[1])
				if err != nil {
					return err
				}
				r := f.target(cmd, b, box.Dimensions())
				out, err = e.MoveTo(b, box, r.Left, r.Top)
				return err
			})
			if err != nil {
				return err
			}
			printSuccess("Moved %s to %s", StyleHighlight.Render(args[1]), describe(out))
			return nil
		},
	}

	f.register(cmd, true, false)
	return cmd
}

// transferCommand parks a box in a pallete.
func (c *CLI) transferCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "transfer <board> <box> [pallete]",
		Short:             "Move a box into a pallete (default pallete if omitted)",
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			var palleteID string
			if len(args) == 3 {
				palleteID = args[2]
			}
			id, err := w.Transfer(ctx, args[0], args[1], palleteID)
			if err != nil {
				return err
			}
			printSuccess("Moved %s to pallete %s", StyleHighlight.Render(args[1]), StyleHighlight.Render(id))
			return nil
		},
	}
}

// placeCommand moves a box from its pallete onto the board.
func (c *CLI) placeCommand() *cobra.Command {
	var f rectFlags

	cmd := &cobra.Command{
		Use:   "place <board> <box>",
		Short: "Place a pallete box onto the board",
		Long: `Place a box that sits in a pallete onto the board.

Unset flags default to the dimensions the box had when it was parked.`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			var out grid.Rect
			_, err = w.Update(ctx, args[0], func(b *board.Board, e *board.Engine) error {
				box, err := b.Lookup(args[1])
				if err != nil {
					return err
				}
				out, err = e.Place(b, box, f.target(cmd, b, box.Dimensions()))
				return err
			})
			if err != nil {
				return err
			}
			printSuccess("Placed %s at %s", StyleHighlight.Render(args[1]), describe(out))
			return nil
		},
	}

	f.register(cmd, true, true)
	return cmd
}

// describe formats a rectangle for status lines.
func describe(r grid.Rect) string {
	return fmt.Sprintf("%dx%d at (%d,%d)", r.Width, r.Height, r.Left, r.Top)
}
